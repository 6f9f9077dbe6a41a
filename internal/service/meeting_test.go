package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplebook/api/internal/domain"
)

func TestMeetingService_CreateMeeting_HostRequired(t *testing.T) {
	zero := uint(0)

	tests := []struct {
		name   string
		hostID *uint
	}{
		{name: "nil host", hostID: nil},
		{name: "zero host", hostID: &zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubMeetingRepository{}
			svc := NewMeetingService(repo, &stubRecordRepository{})

			_, err := svc.CreateMeeting(context.Background(), domain.Meeting{
				Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Location: "Cafe",
				HostID:   tt.hostID,
			}, nil)

			assert.ErrorIs(t, err, ErrHostRequired)
			assert.Empty(t, repo.meetings)
		})
	}
}

func TestMeetingService_CreateMeeting(t *testing.T) {
	repo := &stubMeetingRepository{}
	svc := NewMeetingService(repo, &stubRecordRepository{})

	hostID := uint(3)
	created, err := svc.CreateMeeting(context.Background(), domain.Meeting{
		Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Location: "Cafe",
		HostID:   &hostID,
	}, []uint{1, 2})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Cafe", created.Location)
}

func TestMeetingService_AddParticipant_DefaultsStatus(t *testing.T) {
	repo := &stubMeetingRepository{}
	svc := NewMeetingService(repo, &stubRecordRepository{})

	upserted, err := svc.AddParticipant(context.Background(), domain.MeetingParticipant{
		MeetingID: 1,
		PlayerID:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, upserted.Status)
	require.NotNil(t, repo.lastUpsert)
	assert.Equal(t, domain.StatusConfirmed, repo.lastUpsert.Status)
}

func TestMeetingService_AddParticipant_KeepsStatus(t *testing.T) {
	repo := &stubMeetingRepository{}
	svc := NewMeetingService(repo, &stubRecordRepository{})

	upserted, err := svc.AddParticipant(context.Background(), domain.MeetingParticipant{
		MeetingID: 1,
		PlayerID:  2,
		Status:    domain.StatusMaybe,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusMaybe, upserted.Status)
}

func TestMeetingService_GetMeeting(t *testing.T) {
	hostID := uint(1)
	meetingID := uint(1)
	repo := &stubMeetingRepository{
		meetings: []domain.Meeting{
			{ID: 1, Location: "Cafe", HostID: &hostID},
		},
		participants: []domain.MeetingParticipant{
			{ID: 1, MeetingID: 1, PlayerID: 2},
		},
	}
	recordRepo := &stubRecordRepository{
		records: []domain.GameRecord{
			{ID: 1, GameID: 1, MeetingID: &meetingID},
			{ID: 2, GameID: 1},
		},
	}
	svc := NewMeetingService(repo, recordRepo)

	detail, err := svc.GetMeeting(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Cafe", detail.Location)
	assert.Len(t, detail.Participants, 1)

	// Only records attached to this meeting.
	require.Len(t, detail.Records, 1)
	assert.Equal(t, uint(1), detail.Records[0].ID)
}

func TestMeetingService_GetMeeting_NotFound(t *testing.T) {
	svc := NewMeetingService(&stubMeetingRepository{}, &stubRecordRepository{})

	_, err := svc.GetMeeting(context.Background(), 404)

	assert.ErrorIs(t, err, ErrMeetingNotFound)
}
