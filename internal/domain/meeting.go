package domain

import "time"

type ParticipantStatus string

const (
	StatusConfirmed ParticipantStatus = "confirmed"
	StatusMaybe     ParticipantStatus = "maybe"
	StatusDeclined  ParticipantStatus = "declined"
)

type Meeting struct {
	ID           uint      `json:"id"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	HostID       *uint     `json:"host_id"`
	Host         *Player   `json:"host,omitempty"`
	PlannedGames []Game    `json:"planned_games"`
	CreatedAt    time.Time `json:"created_at"`
}

// MeetingSummary is a meeting as shown in listings, with cheap counts
// instead of nested rows.
type MeetingSummary struct {
	Meeting
	GameCount        int `json:"game_count"`
	ParticipantCount int `json:"participant_count"`
}

// MeetingDetail is a meeting with its participants and the game records
// played there.
type MeetingDetail struct {
	Meeting
	Participants []MeetingParticipant `json:"participants"`
	Records      []GameRecord         `json:"game_records"`
}

// MeetingParticipant links a registered player to a meeting. The
// (meeting, player) pair is unique; re-adding the same player updates
// arrival time and status instead of duplicating the row.
type MeetingParticipant struct {
	ID          uint              `json:"id"`
	MeetingID   uint              `json:"meeting_id"`
	PlayerID    uint              `json:"player_id"`
	Player      *Player           `json:"player,omitempty"`
	ArrivalTime time.Time         `json:"-"`
	Status      ParticipantStatus `json:"status"`
}
