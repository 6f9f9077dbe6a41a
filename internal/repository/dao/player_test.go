package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerDAO_InsertAndFind(t *testing.T) {
	db := newTestDB(t)
	d := NewPlayerDAO(db)
	ctx := context.Background()

	year := 1985
	created, err := d.Insert(ctx, Player{Name: "Alice", BirthYear: &year, MBTI: "INTJ"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)
	require.NotNil(t, found.BirthYear)
	assert.Equal(t, 1985, *found.BirthYear)

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPlayerDAO_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	d := NewPlayerDAO(db)

	_, err := d.FindByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestPlayerDAO_Update(t *testing.T) {
	db := newTestDB(t)
	d := NewPlayerDAO(db)
	ctx := context.Background()

	player := seedPlayer(t, db, "Alice")

	player.Name = "Alicia"
	player.Location = "Seoul"
	_, err := d.Update(ctx, player)
	require.NoError(t, err)

	found, err := d.FindByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", found.Name)
	assert.Equal(t, "Seoul", found.Location)
}

func TestPlayerDAO_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	d := NewPlayerDAO(db)

	_, err := d.Update(context.Background(), Player{ID: 404, Name: "Ghost"})

	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestPlayerDAO_Delete_RemovesOwnResultsOnly(t *testing.T) {
	db := newTestDB(t)
	d := NewPlayerDAO(db)
	ctx := context.Background()

	alice := seedPlayer(t, db, "Alice")
	game := seedGame(t, db, "Catan")
	meeting := seedMeeting(t, db, "Cafe", nil)
	record := seedRecord(t, db, game.ID, &meeting.ID, meeting.Date)

	seedResult(t, db, record.ID, &alice.ID, "", 10, true)
	unregistered := seedResult(t, db, record.ID, nil, "Guest", 7, false)

	require.NoError(t, db.Create(&MeetingParticipant{
		MeetingID:   meeting.ID,
		PlayerID:    alice.ID,
		ArrivalTime: meeting.Date,
		Status:      "confirmed",
	}).Error)

	require.NoError(t, d.Delete(ctx, alice.ID))

	_, err := d.FindByID(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	// The registered result and the participant row go with the player;
	// the unregistered result and the record itself stay.
	var results []GameResult
	require.NoError(t, db.Find(&results).Error)
	require.Len(t, results, 1)
	assert.Equal(t, unregistered.ID, results[0].ID)

	assert.EqualValues(t, 0, count(t, db, &MeetingParticipant{}))
	assert.EqualValues(t, 1, count(t, db, &GameRecord{}))
}

func TestPlayerDAO_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	d := NewPlayerDAO(db)

	err := d.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrPlayerNotFound)
}
