package response

import (
	"github.com/meeplebook/api/internal/domain"
)

type Host struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PlannedGame struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Meeting is a meeting as listed, dates formatted YYYY-MM-DD.
type Meeting struct {
	ID               uint          `json:"id"`
	Date             string        `json:"date"`
	Location         string        `json:"location"`
	Description      string        `json:"description"`
	HostID           *uint         `json:"host_id"`
	Host             *Host         `json:"host"`
	PlannedGames     []PlannedGame `json:"planned_games"`
	GameCount        int           `json:"game_count"`
	ParticipantCount int           `json:"participant_count"`
	CreatedAt        string        `json:"created_at"`
}

type Participant struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ArrivalTime string `json:"arrival_time"`
	Status      string `json:"status"`
}

type MeetingDetail struct {
	Meeting
	Participants []Participant `json:"participants"`
	GameRecords  []GameRecord  `json:"game_records"`
}

func newMeeting(m domain.Meeting) Meeting {
	out := Meeting{
		ID:           m.ID,
		Date:         m.Date.Format("2006-01-02"),
		Location:     m.Location,
		Description:  m.Description,
		HostID:       m.HostID,
		PlannedGames: make([]PlannedGame, len(m.PlannedGames)),
		CreatedAt:    m.CreatedAt.Format("2006-01-02"),
	}

	if m.Host != nil {
		out.Host = &Host{ID: m.Host.ID, Name: m.Host.Name}
	}

	for i, g := range m.PlannedGames {
		out.PlannedGames[i] = PlannedGame{ID: g.ID, Name: g.Name}
	}

	return out
}

func NewMeetingSummary(m domain.MeetingSummary) Meeting {
	out := newMeeting(m.Meeting)
	out.GameCount = m.GameCount
	out.ParticipantCount = m.ParticipantCount

	return out
}

func NewMeetingSummaries(meetings []domain.MeetingSummary) []Meeting {
	out := make([]Meeting, len(meetings))
	for i, m := range meetings {
		out[i] = NewMeetingSummary(m)
	}
	return out
}

func NewCreatedMeeting(m domain.Meeting) Meeting {
	return newMeeting(m)
}

func NewParticipant(p domain.MeetingParticipant) Participant {
	out := Participant{
		ID:          p.ID,
		ArrivalTime: p.ArrivalTime.Format("15:04"),
		Status:      string(p.Status),
	}

	if p.Player != nil {
		out.Name = p.Player.Name
	}

	return out
}

func NewMeetingDetail(d domain.MeetingDetail) MeetingDetail {
	out := MeetingDetail{
		Meeting:      newMeeting(d.Meeting),
		Participants: make([]Participant, len(d.Participants)),
		GameRecords:  NewGameRecords(d.Records),
	}

	for i, p := range d.Participants {
		out.Participants[i] = NewParticipant(p)
	}

	return out
}
