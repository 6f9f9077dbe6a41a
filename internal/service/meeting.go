package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/meeplebook/api/internal/domain"
	"github.com/meeplebook/api/internal/repository"
)

var (
	ErrMeetingNotFound = repository.ErrMeetingNotFound

	// ErrHostRequired rejects directly created meetings without a host.
	ErrHostRequired = errors.New("meeting host is required")
)

type MeetingRepository interface {
	Create(ctx context.Context, meeting domain.Meeting, plannedGameIDs []uint) (domain.Meeting, error)
	FindAll(ctx context.Context) ([]domain.MeetingSummary, error)
	FindByID(ctx context.Context, id uint) (domain.Meeting, error)
	Delete(ctx context.Context, id uint) error
	UpsertParticipant(ctx context.Context, participant domain.MeetingParticipant) (domain.MeetingParticipant, error)
	FindParticipants(ctx context.Context, meetingID uint) ([]domain.MeetingParticipant, error)
}

type MeetingService struct {
	repo       MeetingRepository
	recordRepo RecordRepository
}

func NewMeetingService(repo MeetingRepository, recordRepo RecordRepository) *MeetingService {
	return &MeetingService{
		repo:       repo,
		recordRepo: recordRepo,
	}
}

// ListMeetings returns all meetings newest first, with game and
// confirmed-participant counts.
func (s *MeetingService) ListMeetings(ctx context.Context) ([]domain.MeetingSummary, error) {
	meetings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return meetings, nil
}

func (s *MeetingService) GetMeeting(ctx context.Context, id uint) (domain.MeetingDetail, error) {
	meeting, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.MeetingDetail{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	participants, err := s.repo.FindParticipants(ctx, id)
	if err != nil {
		return domain.MeetingDetail{}, fmt.Errorf("s.repo.FindParticipants -> %w", err)
	}

	records, err := s.recordRepo.FindAll(ctx, nil, &id)
	if err != nil {
		return domain.MeetingDetail{}, fmt.Errorf("s.recordRepo.FindAll -> %w", err)
	}

	return domain.MeetingDetail{
		Meeting:      meeting,
		Participants: participants,
		Records:      records,
	}, nil
}

// CreateMeeting creates a meeting with a required host. Unknown planned
// game ids are skipped; an unknown host aborts with ErrPlayerNotFound.
func (s *MeetingService) CreateMeeting(ctx context.Context, meeting domain.Meeting, plannedGameIDs []uint) (domain.Meeting, error) {
	if meeting.HostID == nil || *meeting.HostID == 0 {
		return domain.Meeting{}, ErrHostRequired
	}

	created, err := s.repo.Create(ctx, meeting, plannedGameIDs)
	if err != nil {
		return domain.Meeting{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *MeetingService) DeleteMeeting(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// AddParticipant upserts a player's attendance; re-adding the same
// player updates arrival time and status.
func (s *MeetingService) AddParticipant(ctx context.Context, participant domain.MeetingParticipant) (domain.MeetingParticipant, error) {
	if participant.Status == "" {
		participant.Status = domain.StatusConfirmed
	}

	upserted, err := s.repo.UpsertParticipant(ctx, participant)
	if err != nil {
		return domain.MeetingParticipant{}, fmt.Errorf("s.repo.UpsertParticipant -> %w", err)
	}

	return upserted, nil
}
