package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplebook/api/internal/repository/dao"
)

type stubRecordDAO struct {
	rows []dao.PlayerResultRow
}

func (s *stubRecordDAO) FindAll(_ context.Context, _ dao.RecordFilter) ([]dao.GameRecord, error) {
	return nil, nil
}

func (s *stubRecordDAO) FindByID(_ context.Context, _ uint) (dao.GameRecord, error) {
	return dao.GameRecord{}, dao.ErrRecordNotFound
}

func (s *stubRecordDAO) Delete(_ context.Context, _ uint) error {
	return nil
}

func (s *stubRecordDAO) InsertFull(_ context.Context, draft dao.RecordDraft) (dao.GameRecord, error) {
	return dao.GameRecord{
		ID:        1,
		GameID:    draft.GameID,
		MeetingID: draft.MeetingID,
		Date:      draft.Date,
		Results:   draft.Results,
	}, nil
}

func (s *stubRecordDAO) FindAllWithResults(_ context.Context) ([]dao.GameRecord, error) {
	return nil, nil
}

func (s *stubRecordDAO) FindByGameIDWithResults(_ context.Context, _ uint) ([]dao.GameRecord, error) {
	return nil, nil
}

func (s *stubRecordDAO) FindResultsByPlayerID(_ context.Context, _ uint) ([]dao.PlayerResultRow, error) {
	return s.rows, nil
}

func TestResultDaoToDomain(t *testing.T) {
	playerID := uint(3)

	registered := resultDaoToDomain(dao.GameResult{
		ID:       1,
		PlayerID: &playerID,
		Player:   &dao.Player{ID: playerID, Name: "Alice"},
		Score:    10,
		IsWinner: true,
	})
	assert.True(t, registered.Participant.Registered())
	assert.Equal(t, playerID, registered.Participant.PlayerID())
	assert.Equal(t, "Alice", registered.PlayerName)

	unregistered := resultDaoToDomain(dao.GameResult{
		ID:         2,
		PlayerName: "Guest",
		Score:      5,
	})
	assert.False(t, unregistered.Participant.Registered())
	assert.Equal(t, "Guest", unregistered.PlayerName)
}

func TestRecordRepository_FindHistoryByPlayerID(t *testing.T) {
	meetingID := uint(7)
	meetingDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	location := "Cafe"

	repo := NewRecordRepository(&stubRecordDAO{rows: []dao.PlayerResultRow{
		{
			ResultID:        1,
			GameID:          2,
			GameName:        "Catan",
			Score:           10,
			IsWinner:        true,
			MeetingID:       &meetingID,
			MeetingDate:     &meetingDate,
			MeetingLocation: &location,
		},
		{
			ResultID: 2,
			GameID:   2,
			GameName: "Catan",
			Score:    4,
		},
	}})

	history, err := repo.FindHistoryByPlayerID(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, "2024-03-15", history[0].MeetingDate)
	assert.Equal(t, "Cafe", history[0].MeetingLocation)
	assert.True(t, history[0].IsWinner)

	// Meetingless results come back with empty meeting fields.
	assert.Nil(t, history[1].MeetingID)
	assert.Empty(t, history[1].MeetingDate)
	assert.Empty(t, history[1].MeetingLocation)
}
