package domain

import (
	"errors"
	"time"
)

var (
	// ErrNoParticipantIdentity is returned when a game result carries
	// neither a registered player id nor an unregistered player name.
	ErrNoParticipantIdentity = errors.New("game result needs a player id or a player name")
)

// Participant identifies who a game result belongs to: a registered
// player referenced by id, or an unregistered one known only by name.
// The zero value is invalid; use RegisteredParticipant or
// UnregisteredParticipant.
type Participant struct {
	playerID uint
	name     string
}

func RegisteredParticipant(playerID uint) Participant {
	return Participant{playerID: playerID}
}

func UnregisteredParticipant(name string) Participant {
	return Participant{name: name}
}

func (p Participant) Registered() bool {
	return p.playerID != 0
}

// PlayerID returns the registered player id, or 0 for unregistered
// participants.
func (p Participant) PlayerID() uint {
	return p.playerID
}

// Name returns the display name of an unregistered participant. For
// registered participants the authoritative name lives on the Player
// row and this is empty.
func (p Participant) Name() string {
	return p.name
}

func (p Participant) Validate() error {
	if p.playerID == 0 && p.name == "" {
		return ErrNoParticipantIdentity
	}

	return nil
}

// GameRecord is one playthrough of one game, optionally tied to a
// meeting.
type GameRecord struct {
	ID        uint         `json:"id"`
	GameID    uint         `json:"game_id"`
	MeetingID *uint        `json:"meeting_id"`
	Date      time.Time    `json:"date"`
	Game      *Game        `json:"game,omitempty"`
	Results   []GameResult `json:"results"`
}

// GameResult is one participant's outcome within a game record.
type GameResult struct {
	ID           uint        `json:"id"`
	GameRecordID uint        `json:"game_record_id"`
	Participant  Participant `json:"-"`
	PlayerName   string      `json:"player_name"` // resolved display name
	Score        int         `json:"score"`
	IsWinner     bool        `json:"is_winner"`
}

// RecordDraft is the input of the composite "add game record"
// operation. Exactly one of GameID / NewGame must be set; MeetingID and
// NewMeeting are both optional but mutually exclusive.
type RecordDraft struct {
	GameID     uint
	NewGame    *GameDraft
	MeetingID  *uint
	NewMeeting *MeetingDraft
	Date       time.Time
	Results    []ResultDraft
}

type GameDraft struct {
	Name        string
	Description string
}

type MeetingDraft struct {
	Location    string
	Description string
	HostID      *uint
}

type ResultDraft struct {
	Participant Participant
	Score       int
	IsWinner    bool
}
