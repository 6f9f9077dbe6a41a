package repository

import (
	"context"
	"fmt"

	"github.com/meeplebook/api/internal/domain"
	"github.com/meeplebook/api/internal/repository/dao"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
)

type RecordDAO interface {
	FindAll(ctx context.Context, filter dao.RecordFilter) ([]dao.GameRecord, error)
	FindByID(ctx context.Context, id uint) (dao.GameRecord, error)
	Delete(ctx context.Context, id uint) error
	InsertFull(ctx context.Context, draft dao.RecordDraft) (dao.GameRecord, error)
	FindAllWithResults(ctx context.Context) ([]dao.GameRecord, error)
	FindByGameIDWithResults(ctx context.Context, gameID uint) ([]dao.GameRecord, error)
	FindResultsByPlayerID(ctx context.Context, playerID uint) ([]dao.PlayerResultRow, error)
}

type RecordRepository struct {
	dao RecordDAO
}

func NewRecordRepository(dao RecordDAO) *RecordRepository {
	return &RecordRepository{
		dao: dao,
	}
}

func resultDaoToDomain(res dao.GameResult) domain.GameResult {
	var participant domain.Participant
	if res.PlayerID != nil && *res.PlayerID != 0 {
		participant = domain.RegisteredParticipant(*res.PlayerID)
	} else {
		participant = domain.UnregisteredParticipant(res.PlayerName)
	}

	name := res.PlayerName
	if res.Player != nil {
		name = res.Player.Name
	}

	return domain.GameResult{
		ID:           res.ID,
		GameRecordID: res.GameRecordID,
		Participant:  participant,
		PlayerName:   name,
		Score:        res.Score,
		IsWinner:     res.IsWinner,
	}
}

func resultDomainToDao(res domain.ResultDraft) dao.GameResult {
	out := dao.GameResult{
		Score:    res.Score,
		IsWinner: res.IsWinner,
	}

	if res.Participant.Registered() {
		id := res.Participant.PlayerID()
		out.PlayerID = &id
	} else {
		out.PlayerName = res.Participant.Name()
	}

	return out
}

func recordDaoToDomain(rec dao.GameRecord) domain.GameRecord {
	record := domain.GameRecord{
		ID:        rec.ID,
		GameID:    rec.GameID,
		MeetingID: rec.MeetingID,
		Date:      rec.Date,
		Results:   make([]domain.GameResult, len(rec.Results)),
	}

	if rec.Game.ID != 0 {
		game := gameDaoToDomain(rec.Game)
		record.Game = &game
	}

	for i, res := range rec.Results {
		record.Results[i] = resultDaoToDomain(res)
	}

	return record
}

func recordsDaoToDomain(records []dao.GameRecord) []domain.GameRecord {
	out := make([]domain.GameRecord, len(records))
	for i, rec := range records {
		out[i] = recordDaoToDomain(rec)
	}
	return out
}

func (r *RecordRepository) FindAll(ctx context.Context, gameID, meetingID *uint) ([]domain.GameRecord, error) {
	records, err := r.dao.FindAll(ctx, dao.RecordFilter{GameID: gameID, MeetingID: meetingID})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return recordsDaoToDomain(records), nil
}

func (r *RecordRepository) FindByID(ctx context.Context, id uint) (domain.GameRecord, error) {
	record, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.GameRecord{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return recordDaoToDomain(record), nil
}

func (r *RecordRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *RecordRepository) CreateFull(ctx context.Context, draft domain.RecordDraft) (domain.GameRecord, error) {
	daoDraft := dao.RecordDraft{
		GameID:    draft.GameID,
		MeetingID: draft.MeetingID,
		Date:      draft.Date,
	}

	if draft.NewGame != nil {
		daoDraft.NewGame = &dao.Game{
			Name:        draft.NewGame.Name,
			Description: draft.NewGame.Description,
		}
	}

	if draft.NewMeeting != nil {
		daoDraft.NewMeeting = &dao.Meeting{
			Date:        draft.Date,
			Location:    draft.NewMeeting.Location,
			Description: draft.NewMeeting.Description,
			HostID:      draft.NewMeeting.HostID,
		}
	}

	daoDraft.Results = make([]dao.GameResult, len(draft.Results))
	for i, res := range draft.Results {
		daoDraft.Results[i] = resultDomainToDao(res)
	}

	created, err := r.dao.InsertFull(ctx, daoDraft)
	if err != nil {
		return domain.GameRecord{}, fmt.Errorf("r.dao.InsertFull -> %w", err)
	}

	return recordDaoToDomain(created), nil
}

func (r *RecordRepository) FindAllWithResults(ctx context.Context) ([]domain.GameRecord, error) {
	records, err := r.dao.FindAllWithResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllWithResults -> %w", err)
	}

	return recordsDaoToDomain(records), nil
}

func (r *RecordRepository) FindByGameIDWithResults(ctx context.Context, gameID uint) ([]domain.GameRecord, error) {
	records, err := r.dao.FindByGameIDWithResults(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByGameIDWithResults -> %w", err)
	}

	return recordsDaoToDomain(records), nil
}

func (r *RecordRepository) FindHistoryByPlayerID(ctx context.Context, playerID uint) ([]domain.HistoryEntry, error) {
	rows, err := r.dao.FindResultsByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindResultsByPlayerID -> %w", err)
	}

	history := make([]domain.HistoryEntry, len(rows))
	for i, row := range rows {
		entry := domain.HistoryEntry{
			ResultID:  row.ResultID,
			GameID:    row.GameID,
			GameName:  row.GameName,
			Score:     row.Score,
			IsWinner:  row.IsWinner,
			MeetingID: row.MeetingID,
		}

		if row.MeetingDate != nil {
			entry.MeetingDate = row.MeetingDate.Format("2006-01-02")
		}
		if row.MeetingLocation != nil {
			entry.MeetingLocation = *row.MeetingLocation
		}

		history[i] = entry
	}

	return history, nil
}
