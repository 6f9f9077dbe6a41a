package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDAO_InsertFull_NewGameAndMeeting(t *testing.T) {
	db := newTestDB(t)
	d := NewRecordDAO(db)
	ctx := context.Background()

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := d.InsertFull(ctx, RecordDraft{
		NewGame:    &Game{Name: "Catan"},
		NewMeeting: &Meeting{Date: date, Location: "Cafe X"},
		Date:       date,
		Results: []GameResult{
			{PlayerName: "Alice", Score: 10, IsWinner: true},
		},
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	require.NotNil(t, created.MeetingID)

	// Exactly one game, one meeting, one record, one result.
	assert.EqualValues(t, 1, count(t, db, &Game{}))
	assert.EqualValues(t, 1, count(t, db, &Meeting{}))
	assert.EqualValues(t, 1, count(t, db, &GameRecord{}))
	assert.EqualValues(t, 1, count(t, db, &GameResult{}))

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Catan", found.Game.Name)
	require.Len(t, found.Results, 1)
	assert.Nil(t, found.Results[0].PlayerID)
	assert.Equal(t, "Alice", found.Results[0].PlayerName)
	assert.True(t, found.Results[0].IsWinner)
}

func TestRecordDAO_InsertFull_ExistingGameAndMeeting(t *testing.T) {
	db := newTestDB(t)
	d := NewRecordDAO(db)
	ctx := context.Background()

	alice := seedPlayer(t, db, "Alice")
	game := seedGame(t, db, "Catan")
	meeting := seedMeeting(t, db, "Cafe", &alice.ID)

	created, err := d.InsertFull(ctx, RecordDraft{
		GameID:    game.ID,
		MeetingID: &meeting.ID,
		Date:      meeting.Date,
		Results: []GameResult{
			{PlayerID: &alice.ID, Score: 12, IsWinner: true},
			{PlayerName: "Guest", Score: 8},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, created.MeetingID)
	assert.Equal(t, meeting.ID, *created.MeetingID)
	assert.Len(t, created.Results, 2)
}

func TestRecordDAO_InsertFull_UnknownGame(t *testing.T) {
	db := newTestDB(t)
	d := NewRecordDAO(db)

	_, err := d.InsertFull(context.Background(), RecordDraft{
		GameID: 404,
		Date:   time.Now(),
		Results: []GameResult{
			{PlayerName: "Alice"},
		},
	})

	assert.ErrorIs(t, err, ErrGameNotFound)
	assert.EqualValues(t, 0, count(t, db, &GameRecord{}))
}

func TestRecordDAO_InsertFull_UnknownMeeting(t *testing.T) {
	db := newTestDB(t)
	d := NewRecordDAO(db)

	game := seedGame(t, db, "Catan")
	meetingID := uint(404)

	_, err := d.InsertFull(context.Background(), RecordDraft{
		GameID:    game.ID,
		MeetingID: &meetingID,
		Date:      time.Now(),
		Results: []GameResult{
			{PlayerName: "Alice"},
		},
	})

	assert.ErrorIs(t, err, ErrMeetingNotFound)
	assert.EqualValues(t, 0, count(t, db, &GameRecord{}))
}

func TestRecordDAO_InsertFull_UnknownPlayerRollsBack(t *testing.T) {
	db := newTestDB(t)
	d := NewRecordDAO(db)

	alice := seedPlayer(t, db, "Alice")
	ghost := uint(404)

	// The whole transaction aborts, including the on-the-fly game.
	_, err := d.InsertFull(context.Background(), RecordDraft{
		NewGame: &Game{Name: "Catan"},
		Date:    time.Now(),
		Results: []GameResult{
			{PlayerID: &alice.ID, Score: 10},
			{PlayerID: &ghost, Score: 5},
		},
	})

	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.EqualValues(t, 0, count(t, db, &Game{}))
	assert.EqualValues(t, 0, count(t, db, &GameRecord{}))
	assert.EqualValues(t, 0, count(t, db, &GameResult{}))
}

func TestRecordDAO_FindAll_Filters(t *testing.T) {
	db := newTestDB(t)
	d := NewRecordDAO(db)
	ctx := context.Background()

	catan := seedGame(t, db, "Catan")
	azul := seedGame(t, db, "Azul")
	meeting := seedMeeting(t, db, "Cafe", nil)

	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	first := seedRecord(t, db, catan.ID, &meeting.ID, older)
	second := seedRecord(t, db, catan.ID, nil, newer)
	third := seedRecord(t, db, azul.ID, &meeting.ID, newer)

	all, err := d.FindAll(ctx, RecordFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Newest first, id breaks the tie.
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)

	byGame, err := d.FindAll(ctx, RecordFilter{GameID: &catan.ID})
	require.NoError(t, err)
	assert.Len(t, byGame, 2)

	byMeeting, err := d.FindAll(ctx, RecordFilter{MeetingID: &meeting.ID})
	require.NoError(t, err)
	assert.Len(t, byMeeting, 2)
}

func TestRecordDAO_Delete(t *testing.T) {
	db := newTestDB(t)
	d := NewRecordDAO(db)
	ctx := context.Background()

	game := seedGame(t, db, "Catan")
	record := seedRecord(t, db, game.ID, nil, time.Now())
	seedResult(t, db, record.ID, nil, "Alice", 10, true)

	require.NoError(t, d.Delete(ctx, record.ID))

	_, err := d.FindByID(ctx, record.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.EqualValues(t, 0, count(t, db, &GameResult{}))
}

func TestRecordDAO_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	d := NewRecordDAO(db)

	err := d.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordDAO_FindResultsByPlayerID(t *testing.T) {
	db := newTestDB(t)
	d := NewRecordDAO(db)
	ctx := context.Background()

	alice := seedPlayer(t, db, "Alice")
	game := seedGame(t, db, "Catan")
	meeting := seedMeeting(t, db, "Cafe", &alice.ID)

	attached := seedRecord(t, db, game.ID, &meeting.ID, meeting.Date)
	detached := seedRecord(t, db, game.ID, nil, meeting.Date)

	seedResult(t, db, attached.ID, &alice.ID, "", 10, true)
	seedResult(t, db, detached.ID, &alice.ID, "", 5, false)
	seedResult(t, db, attached.ID, nil, "Guest", 3, false)

	rows, err := d.FindResultsByPlayerID(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Catan", rows[0].GameName)
	require.NotNil(t, rows[0].MeetingID)
	require.NotNil(t, rows[0].MeetingLocation)
	assert.Equal(t, "Cafe", *rows[0].MeetingLocation)
	assert.True(t, rows[0].IsWinner)

	// The meetingless record joins with nulls.
	assert.Nil(t, rows[1].MeetingID)
	assert.Nil(t, rows[1].MeetingLocation)
}
