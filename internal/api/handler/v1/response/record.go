package response

import (
	"github.com/meeplebook/api/internal/domain"
)

// ResultPlayer is the participant of a game result: a registered player
// carries an id, an unregistered one only a name.
type ResultPlayer struct {
	ID         *uint  `json:"id"`
	Name       string `json:"name"`
	Registered bool   `json:"registered"`
}

type GameResult struct {
	ID       uint         `json:"id"`
	Player   ResultPlayer `json:"player"`
	Score    int          `json:"score"`
	IsWinner bool         `json:"is_winner"`
}

type GameRecord struct {
	ID        uint         `json:"id"`
	GameID    uint         `json:"game_id"`
	GameName  string       `json:"game_name"`
	MeetingID *uint        `json:"meeting_id"`
	Date      string       `json:"date"`
	Results   []GameResult `json:"results"`
}

func NewGameResult(res domain.GameResult) GameResult {
	out := GameResult{
		ID:       res.ID,
		Score:    res.Score,
		IsWinner: res.IsWinner,
		Player: ResultPlayer{
			Name:       res.PlayerName,
			Registered: res.Participant.Registered(),
		},
	}

	if res.Participant.Registered() {
		id := res.Participant.PlayerID()
		out.Player.ID = &id
	}

	return out
}

func NewGameRecord(rec domain.GameRecord) GameRecord {
	out := GameRecord{
		ID:        rec.ID,
		GameID:    rec.GameID,
		MeetingID: rec.MeetingID,
		Date:      rec.Date.Format("2006-01-02"),
		Results:   make([]GameResult, len(rec.Results)),
	}

	if rec.Game != nil {
		out.GameName = rec.Game.Name
	}

	for i, res := range rec.Results {
		out.Results[i] = NewGameResult(res)
	}

	return out
}

func NewGameRecords(records []domain.GameRecord) []GameRecord {
	out := make([]GameRecord, len(records))
	for i, rec := range records {
		out[i] = NewGameRecord(rec)
	}
	return out
}
