package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/meeplebook/api/internal/domain"
	"github.com/meeplebook/api/internal/repository"
)

var (
	ErrRecordNotFound = repository.ErrRecordNotFound

	ErrDateRequired      = errors.New("record date is required")
	ErrGameRequired      = errors.New("a game id or a new game name is required")
	ErrResultsRequired   = errors.New("at least one participant result is required")
	ErrAmbiguousGame     = errors.New("game id and new game name are mutually exclusive")
	ErrAmbiguousMeeting  = errors.New("meeting id and new meeting location are mutually exclusive")
	ErrInvalidResult    = domain.ErrNoParticipantIdentity
)

type RecordRepository interface {
	FindAll(ctx context.Context, gameID, meetingID *uint) ([]domain.GameRecord, error)
	FindByID(ctx context.Context, id uint) (domain.GameRecord, error)
	Delete(ctx context.Context, id uint) error
	CreateFull(ctx context.Context, draft domain.RecordDraft) (domain.GameRecord, error)
	FindAllWithResults(ctx context.Context) ([]domain.GameRecord, error)
	FindByGameIDWithResults(ctx context.Context, gameID uint) ([]domain.GameRecord, error)
	FindHistoryByPlayerID(ctx context.Context, playerID uint) ([]domain.HistoryEntry, error)
}

type RecordService struct {
	repo RecordRepository
}

func NewRecordService(repo RecordRepository) *RecordService {
	return &RecordService{
		repo: repo,
	}
}

func (s *RecordService) ListRecords(ctx context.Context, gameID, meetingID *uint) ([]domain.GameRecord, error) {
	records, err := s.repo.FindAll(ctx, gameID, meetingID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return records, nil
}

func (s *RecordService) GetRecord(ctx context.Context, id uint) (domain.GameRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.GameRecord{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return record, nil
}

func (s *RecordService) DeleteRecord(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// CreateRecord is the composite create: it resolves or creates the game
// and the meeting, then persists the record and all its results as one
// transaction. Validation happens up front so a rejected request writes
// nothing; a result referencing an unknown player aborts the whole
// operation inside the transaction.
func (s *RecordService) CreateRecord(ctx context.Context, draft domain.RecordDraft) (domain.GameRecord, error) {
	if err := validateDraft(draft); err != nil {
		return domain.GameRecord{}, err
	}

	created, err := s.repo.CreateFull(ctx, draft)
	if err != nil {
		return domain.GameRecord{}, fmt.Errorf("s.repo.CreateFull -> %w", err)
	}

	return created, nil
}

func validateDraft(draft domain.RecordDraft) error {
	if draft.Date.IsZero() {
		return ErrDateRequired
	}

	hasGameID := draft.GameID != 0
	hasNewGame := draft.NewGame != nil && draft.NewGame.Name != ""
	if !hasGameID && !hasNewGame {
		return ErrGameRequired
	}
	if hasGameID && hasNewGame {
		return ErrAmbiguousGame
	}

	if draft.MeetingID != nil && draft.NewMeeting != nil {
		return ErrAmbiguousMeeting
	}

	if len(draft.Results) == 0 {
		return ErrResultsRequired
	}

	for _, res := range draft.Results {
		if err := res.Participant.Validate(); err != nil {
			return err
		}
	}

	return nil
}
