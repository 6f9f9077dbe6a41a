package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplebook/api/internal/domain"
)

func TestPlayerService_CreatePlayer_NormalizesBirthYear(t *testing.T) {
	tests := []struct {
		name string
		year int
		want int
	}{
		{name: "two digit 1900s", year: 85, want: 1985},
		{name: "two digit 2000s", year: 5, want: 2005},
		{name: "four digit untouched", year: 1999, want: 1999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubPlayerRepository{}
			svc := NewPlayerService(repo, &stubRecordRepository{})

			year := tt.year
			created, err := svc.CreatePlayer(context.Background(), domain.Player{
				Name:      "Alice",
				BirthYear: &year,
			})
			require.NoError(t, err)

			require.NotNil(t, created.BirthYear)
			assert.Equal(t, tt.want, *created.BirthYear)
		})
	}
}

func TestPlayerService_CreatePlayer_NoBirthYear(t *testing.T) {
	repo := &stubPlayerRepository{}
	svc := NewPlayerService(repo, &stubRecordRepository{})

	created, err := svc.CreatePlayer(context.Background(), domain.Player{Name: "Bob"})
	require.NoError(t, err)

	assert.Nil(t, created.BirthYear)
}

func TestPlayerService_GetPlayer(t *testing.T) {
	repo := &stubPlayerRepository{players: []domain.Player{
		{ID: 1, Name: "Alice"},
	}}
	recordRepo := &stubRecordRepository{history: []domain.HistoryEntry{
		{ResultID: 1, GameID: 1, GameName: "Catan", IsWinner: true},
	}}
	svc := NewPlayerService(repo, recordRepo)

	player, history, err := svc.GetPlayer(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Alice", player.Name)
	require.Len(t, history, 1)
	assert.Equal(t, "Catan", history[0].GameName)
}

func TestPlayerService_GetPlayer_NotFound(t *testing.T) {
	svc := NewPlayerService(&stubPlayerRepository{}, &stubRecordRepository{})

	_, _, err := svc.GetPlayer(context.Background(), 404)

	assert.ErrorIs(t, err, ErrPlayerNotFound)
}
