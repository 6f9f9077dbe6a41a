package repository

import (
	"context"
	"fmt"

	"github.com/meeplebook/api/internal/domain"
	"github.com/meeplebook/api/internal/repository/dao"
)

var (
	ErrMeetingNotFound = dao.ErrMeetingNotFound
)

type MeetingDAO interface {
	Insert(ctx context.Context, meeting dao.Meeting, plannedGameIDs []uint) (dao.Meeting, error)
	FindAll(ctx context.Context) ([]dao.Meeting, error)
	FindByID(ctx context.Context, id uint) (dao.Meeting, error)
	Delete(ctx context.Context, id uint) error
	UpsertParticipant(ctx context.Context, participant dao.MeetingParticipant) (dao.MeetingParticipant, error)
	FindParticipants(ctx context.Context, meetingID uint) ([]dao.MeetingParticipant, error)
	CountRecords(ctx context.Context, meetingID uint) (int64, error)
	CountConfirmedParticipants(ctx context.Context, meetingID uint) (int64, error)
}

type MeetingRepository struct {
	dao MeetingDAO
}

func NewMeetingRepository(dao MeetingDAO) *MeetingRepository {
	return &MeetingRepository{
		dao: dao,
	}
}

func meetingDaoToDomain(m dao.Meeting) domain.Meeting {
	meeting := domain.Meeting{
		ID:           m.ID,
		Date:         m.Date,
		Location:     m.Location,
		Description:  m.Description,
		HostID:       m.HostID,
		PlannedGames: gamesDaoToDomain(m.PlannedGames),
		CreatedAt:    m.CreatedAt,
	}

	if m.Host != nil {
		host := playerDaoToDomain(*m.Host)
		meeting.Host = &host
	}

	return meeting
}

func participantDaoToDomain(p dao.MeetingParticipant) domain.MeetingParticipant {
	participant := domain.MeetingParticipant{
		ID:          p.ID,
		MeetingID:   p.MeetingID,
		PlayerID:    p.PlayerID,
		ArrivalTime: p.ArrivalTime,
		Status:      domain.ParticipantStatus(p.Status),
	}

	if p.Player != nil {
		player := playerDaoToDomain(*p.Player)
		participant.Player = &player
	}

	return participant
}

func (r *MeetingRepository) Create(ctx context.Context, meeting domain.Meeting, plannedGameIDs []uint) (domain.Meeting, error) {
	created, err := r.dao.Insert(ctx, dao.Meeting{
		Date:        meeting.Date,
		Location:    meeting.Location,
		Description: meeting.Description,
		HostID:      meeting.HostID,
	}, plannedGameIDs)
	if err != nil {
		return domain.Meeting{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return meetingDaoToDomain(created), nil
}

func (r *MeetingRepository) FindAll(ctx context.Context) ([]domain.MeetingSummary, error) {
	meetings, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	summaries := make([]domain.MeetingSummary, 0, len(meetings))
	for _, m := range meetings {
		gameCount, err := r.dao.CountRecords(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("r.dao.CountRecords -> %w", err)
		}

		participantCount, err := r.dao.CountConfirmedParticipants(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("r.dao.CountConfirmedParticipants -> %w", err)
		}

		summaries = append(summaries, domain.MeetingSummary{
			Meeting:          meetingDaoToDomain(m),
			GameCount:        int(gameCount),
			ParticipantCount: int(participantCount),
		})
	}

	return summaries, nil
}

func (r *MeetingRepository) FindByID(ctx context.Context, id uint) (domain.Meeting, error) {
	meeting, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Meeting{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return meetingDaoToDomain(meeting), nil
}

func (r *MeetingRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *MeetingRepository) UpsertParticipant(ctx context.Context, participant domain.MeetingParticipant) (domain.MeetingParticipant, error) {
	upserted, err := r.dao.UpsertParticipant(ctx, dao.MeetingParticipant{
		MeetingID:   participant.MeetingID,
		PlayerID:    participant.PlayerID,
		ArrivalTime: participant.ArrivalTime,
		Status:      string(participant.Status),
	})
	if err != nil {
		return domain.MeetingParticipant{}, fmt.Errorf("r.dao.UpsertParticipant -> %w", err)
	}

	return participantDaoToDomain(upserted), nil
}

func (r *MeetingRepository) FindParticipants(ctx context.Context, meetingID uint) ([]domain.MeetingParticipant, error) {
	participants, err := r.dao.FindParticipants(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindParticipants -> %w", err)
	}

	out := make([]domain.MeetingParticipant, len(participants))
	for i, p := range participants {
		out[i] = participantDaoToDomain(p)
	}

	return out, nil
}
