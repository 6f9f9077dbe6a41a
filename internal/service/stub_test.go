package service

import (
	"context"

	"github.com/meeplebook/api/internal/domain"
)

// In-memory repository stubs backing the service tests.

type stubPlayerRepository struct {
	players []domain.Player
	created []domain.Player
	deleted []uint
}

func (s *stubPlayerRepository) Create(_ context.Context, player domain.Player) (domain.Player, error) {
	player.ID = uint(len(s.players) + len(s.created) + 1)
	s.created = append(s.created, player)

	return player, nil
}

func (s *stubPlayerRepository) FindAll(_ context.Context) ([]domain.Player, error) {
	return s.players, nil
}

func (s *stubPlayerRepository) FindByID(_ context.Context, id uint) (domain.Player, error) {
	for _, p := range s.players {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Player{}, ErrPlayerNotFound
}

func (s *stubPlayerRepository) Update(_ context.Context, player domain.Player) (domain.Player, error) {
	return player, nil
}

func (s *stubPlayerRepository) Delete(_ context.Context, id uint) error {
	s.deleted = append(s.deleted, id)

	return nil
}

type stubGameRepository struct {
	games []domain.Game
}

func (s *stubGameRepository) Create(_ context.Context, game domain.Game) (domain.Game, error) {
	return game, nil
}

func (s *stubGameRepository) FindAll(_ context.Context) ([]domain.Game, error) {
	return s.games, nil
}

func (s *stubGameRepository) FindByID(_ context.Context, id uint) (domain.Game, error) {
	for _, g := range s.games {
		if g.ID == id {
			return g, nil
		}
	}

	return domain.Game{}, ErrGameNotFound
}

func (s *stubGameRepository) Update(_ context.Context, game domain.Game) (domain.Game, error) {
	return game, nil
}

func (s *stubGameRepository) Delete(_ context.Context, _ uint) error {
	return nil
}

type stubRecordRepository struct {
	records []domain.GameRecord
	history []domain.HistoryEntry

	lastDraft *domain.RecordDraft
	createErr error
}

func (s *stubRecordRepository) FindAll(_ context.Context, gameID, meetingID *uint) ([]domain.GameRecord, error) {
	var out []domain.GameRecord
	for _, rec := range s.records {
		if gameID != nil && rec.GameID != *gameID {
			continue
		}
		if meetingID != nil && (rec.MeetingID == nil || *rec.MeetingID != *meetingID) {
			continue
		}
		out = append(out, rec)
	}

	return out, nil
}

func (s *stubRecordRepository) FindByID(_ context.Context, id uint) (domain.GameRecord, error) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}

	return domain.GameRecord{}, ErrRecordNotFound
}

func (s *stubRecordRepository) Delete(_ context.Context, id uint) error {
	for _, rec := range s.records {
		if rec.ID == id {
			return nil
		}
	}

	return ErrRecordNotFound
}

func (s *stubRecordRepository) CreateFull(_ context.Context, draft domain.RecordDraft) (domain.GameRecord, error) {
	if s.createErr != nil {
		return domain.GameRecord{}, s.createErr
	}

	s.lastDraft = &draft

	return domain.GameRecord{
		ID:        uint(len(s.records) + 1),
		GameID:    draft.GameID,
		MeetingID: draft.MeetingID,
		Date:      draft.Date,
	}, nil
}

func (s *stubRecordRepository) FindAllWithResults(_ context.Context) ([]domain.GameRecord, error) {
	return s.records, nil
}

func (s *stubRecordRepository) FindByGameIDWithResults(_ context.Context, gameID uint) ([]domain.GameRecord, error) {
	var out []domain.GameRecord
	for _, rec := range s.records {
		if rec.GameID == gameID {
			out = append(out, rec)
		}
	}

	return out, nil
}

func (s *stubRecordRepository) FindHistoryByPlayerID(_ context.Context, _ uint) ([]domain.HistoryEntry, error) {
	return s.history, nil
}

type stubMeetingRepository struct {
	meetings     []domain.Meeting
	participants []domain.MeetingParticipant

	lastUpsert *domain.MeetingParticipant
}

func (s *stubMeetingRepository) Create(_ context.Context, meeting domain.Meeting, _ []uint) (domain.Meeting, error) {
	meeting.ID = uint(len(s.meetings) + 1)
	s.meetings = append(s.meetings, meeting)

	return meeting, nil
}

func (s *stubMeetingRepository) FindAll(_ context.Context) ([]domain.MeetingSummary, error) {
	out := make([]domain.MeetingSummary, len(s.meetings))
	for i, m := range s.meetings {
		out[i] = domain.MeetingSummary{Meeting: m}
	}

	return out, nil
}

func (s *stubMeetingRepository) FindByID(_ context.Context, id uint) (domain.Meeting, error) {
	for _, m := range s.meetings {
		if m.ID == id {
			return m, nil
		}
	}

	return domain.Meeting{}, ErrMeetingNotFound
}

func (s *stubMeetingRepository) Delete(_ context.Context, _ uint) error {
	return nil
}

func (s *stubMeetingRepository) UpsertParticipant(_ context.Context, participant domain.MeetingParticipant) (domain.MeetingParticipant, error) {
	s.lastUpsert = &participant

	return participant, nil
}

func (s *stubMeetingRepository) FindParticipants(_ context.Context, _ uint) ([]domain.MeetingParticipant, error) {
	return s.participants, nil
}
