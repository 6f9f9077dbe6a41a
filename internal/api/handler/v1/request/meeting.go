package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateMeetingRequest struct {
	Date         string `json:"date" format:"YYYY-MM-DD"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	HostID       uint   `json:"host_id"`
	PlannedGames []uint `json:"planned_games"`
}

func (req *CreateMeetingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.HostID, validation.Required, validation.Min(uint(1))),
	)
}

type AddParticipantRequest struct {
	PlayerID    uint   `json:"player_id"`
	ArrivalTime string `json:"arrival_time" format:"HH:MM"`
	Status      string `json:"status"`
}

func (req *AddParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PlayerID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.ArrivalTime, validation.Required, validation.Date("15:04")),
		validation.Field(&req.Status, validation.In("confirmed", "maybe", "declined")),
	)
}
