package response

import (
	"github.com/meeplebook/api/internal/domain"
)

// PlayerWithHistory is the single-player payload: the player plus every
// result they played.
type PlayerWithHistory struct {
	domain.Player
	GameHistory []domain.HistoryEntry `json:"game_history"`
}

func NewPlayerWithHistory(player domain.Player, history []domain.HistoryEntry) PlayerWithHistory {
	if history == nil {
		history = []domain.HistoryEntry{}
	}

	return PlayerWithHistory{
		Player:      player,
		GameHistory: history,
	}
}
