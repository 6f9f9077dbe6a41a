package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

type ResultInput struct {
	PlayerID   uint   `json:"player_id"`
	PlayerName string `json:"player_name"`
	Score      int    `json:"score"`
	IsWinner   bool   `json:"is_winner"`
}

// CreateRecordRequest is the composite "add game record" payload.
// Exactly one of game_id / new_game_name picks the game; meeting_id
// attaches to an existing meeting while meeting_location creates a new
// one; neither leaves the record meetingless.
type CreateRecordRequest struct {
	GameID             uint          `json:"game_id"`
	NewGameName        string        `json:"new_game_name"`
	NewGameDescription string        `json:"new_game_description"`
	MeetingID          uint          `json:"meeting_id"`
	MeetingLocation    string        `json:"meeting_location"`
	MeetingDescription string        `json:"meeting_description"`
	MeetingHostID      uint          `json:"meeting_host_id"`
	Date               string        `json:"date" format:"YYYY-MM-DD"`
	Results            []ResultInput `json:"results"`
}

func (req *CreateRecordRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.NewGameName, validation.Length(0, 100)),
		validation.Field(&req.MeetingLocation, validation.Length(0, 100)),
		validation.Field(&req.Results, validation.Required, validation.By(validateResults)),
	)
}

func validateResults(value interface{}) error {
	results, ok := value.([]ResultInput)
	if !ok {
		return errors.New("invalid results")
	}

	for _, res := range results {
		if err := validation.ValidateStruct(&res,
			validation.Field(&res.PlayerName, validation.Length(0, 100)),
		); err != nil {
			return err
		}
	}

	return nil
}
