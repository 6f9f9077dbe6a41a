package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePlayerRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreatePlayerRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  CreatePlayerRequest{Name: "Alice", MBTI: "INTJ", Location: "Seoul"},
		},
		{
			name: "name only is enough",
			req:  CreatePlayerRequest{Name: "Alice"},
		},
		{
			name:    "missing name",
			req:     CreatePlayerRequest{MBTI: "INTJ"},
			wantErr: true,
		},
		{
			name:    "mbti wrong length",
			req:     CreatePlayerRequest{Name: "Alice", MBTI: "INT"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateMeetingRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateMeetingRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  CreateMeetingRequest{Date: "2024-01-01", Location: "Cafe", HostID: 1},
		},
		{
			name:    "missing host",
			req:     CreateMeetingRequest{Date: "2024-01-01", Location: "Cafe"},
			wantErr: true,
		},
		{
			name:    "bad date format",
			req:     CreateMeetingRequest{Date: "01/01/2024", Location: "Cafe", HostID: 1},
			wantErr: true,
		},
		{
			name:    "missing location",
			req:     CreateMeetingRequest{Date: "2024-01-01", HostID: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddParticipantRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     AddParticipantRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  AddParticipantRequest{PlayerID: 1, ArrivalTime: "18:30", Status: "confirmed"},
		},
		{
			name: "status optional",
			req:  AddParticipantRequest{PlayerID: 1, ArrivalTime: "18:30"},
		},
		{
			name:    "missing player",
			req:     AddParticipantRequest{ArrivalTime: "18:30"},
			wantErr: true,
		},
		{
			name:    "bad time format",
			req:     AddParticipantRequest{PlayerID: 1, ArrivalTime: "6pm"},
			wantErr: true,
		},
		{
			name:    "unknown status",
			req:     AddParticipantRequest{PlayerID: 1, ArrivalTime: "18:30", Status: "perhaps"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateRecordRequest_Validate(t *testing.T) {
	results := []ResultInput{
		{PlayerName: "Alice", Score: 10, IsWinner: true},
	}

	tests := []struct {
		name    string
		req     CreateRecordRequest
		wantErr bool
	}{
		{
			name: "valid with game id",
			req:  CreateRecordRequest{GameID: 1, Date: "2024-01-01", Results: results},
		},
		{
			name: "valid with new game",
			req:  CreateRecordRequest{NewGameName: "Catan", Date: "2024-01-01", Results: results},
		},
		{
			name:    "missing date",
			req:     CreateRecordRequest{GameID: 1, Results: results},
			wantErr: true,
		},
		{
			name:    "bad date",
			req:     CreateRecordRequest{GameID: 1, Date: "Jan 1st", Results: results},
			wantErr: true,
		},
		{
			name:    "no results",
			req:     CreateRecordRequest{GameID: 1, Date: "2024-01-01"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
