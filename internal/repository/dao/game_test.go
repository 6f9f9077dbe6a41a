package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameDAO_InsertAndFind(t *testing.T) {
	db := newTestDB(t)
	d := NewGameDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Game{Name: "Catan", Description: "Trade and build"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Catan", found.Name)
}

func TestGameDAO_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	d := NewGameDAO(db)

	_, err := d.Update(context.Background(), Game{ID: 404, Name: "Ghost"})

	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestGameDAO_Delete_CascadesToRecords(t *testing.T) {
	db := newTestDB(t)
	d := NewGameDAO(db)
	ctx := context.Background()

	catan := seedGame(t, db, "Catan")
	azul := seedGame(t, db, "Azul")
	alice := seedPlayer(t, db, "Alice")

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	catanRecord := seedRecord(t, db, catan.ID, nil, date)
	azulRecord := seedRecord(t, db, azul.ID, nil, date)
	seedResult(t, db, catanRecord.ID, &alice.ID, "", 10, true)
	seedResult(t, db, azulRecord.ID, &alice.ID, "", 20, true)

	require.NoError(t, d.Delete(ctx, catan.ID))

	_, err := d.FindByID(ctx, catan.ID)
	assert.ErrorIs(t, err, ErrGameNotFound)

	// Records and results of the other game survive.
	var records []GameRecord
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, azulRecord.ID, records[0].ID)

	assert.EqualValues(t, 1, count(t, db, &GameResult{}))
}

func TestGameDAO_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	d := NewGameDAO(db)

	err := d.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrGameNotFound)
}
