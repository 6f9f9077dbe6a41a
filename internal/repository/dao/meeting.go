package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrMeetingNotFound = errors.New("meeting not found")
)

type Meeting struct {
	ID uint `gorm:"primaryKey"`

	Date        time.Time `gorm:"not null"`
	Location    string    `gorm:"size:100;not null"`
	Description string    `gorm:"size:200"`

	// HostID is required when a meeting is created directly, but the
	// composite game-record flow may create a hostless meeting on the fly.
	HostID *uint   `gorm:"index"`
	Host   *Player `gorm:"foreignKey:HostID"`

	PlannedGames []Game `gorm:"many2many:meeting_planned_games;"`

	CreatedAt time.Time
}

type MeetingParticipant struct {
	ID uint `gorm:"primaryKey"`

	MeetingID uint `gorm:"not null;uniqueIndex:idx_meeting_player"`
	PlayerID  uint `gorm:"not null;uniqueIndex:idx_meeting_player"`

	Player *Player `gorm:"foreignKey:PlayerID"`

	ArrivalTime time.Time `gorm:"not null"`
	Status      string    `gorm:"size:20;not null;default:confirmed"`
}

type MeetingDAO struct {
	db *gorm.DB
}

func NewMeetingDAO(db *gorm.DB) *MeetingDAO {
	return &MeetingDAO{
		db: db,
	}
}

// Insert creates a meeting and attaches the planned games that exist.
// Unknown planned game ids are silently skipped.
func (d *MeetingDAO) Insert(ctx context.Context, meeting Meeting, plannedGameIDs []uint) (Meeting, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if meeting.HostID != nil {
			var host Player
			if err := tx.First(&host, *meeting.HostID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrPlayerNotFound
				}

				return err
			}
		}

		if len(plannedGameIDs) > 0 {
			var games []Game
			if err := tx.Where("id IN ?", plannedGameIDs).Find(&games).Error; err != nil {
				return err
			}
			meeting.PlannedGames = games
		}

		return tx.Create(&meeting).Error
	})
	if err != nil {
		return Meeting{}, err
	}

	return meeting, nil
}

func (d *MeetingDAO) FindAll(ctx context.Context) ([]Meeting, error) {
	var meetings []Meeting

	result := d.db.WithContext(ctx).
		Preload("Host").
		Preload("PlannedGames").
		Order("date DESC").
		Find(&meetings)
	if result.Error != nil {
		return nil, result.Error
	}

	return meetings, nil
}

func (d *MeetingDAO) FindByID(ctx context.Context, id uint) (Meeting, error) {
	var meeting Meeting

	result := d.db.WithContext(ctx).
		Preload("Host").
		Preload("PlannedGames").
		First(&meeting, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Meeting{}, ErrMeetingNotFound
		}

		return Meeting{}, result.Error
	}

	return meeting, nil
}

// Delete removes a meeting, its participant rows and planned-game
// links. Game records played at the meeting are kept and detached.
func (d *MeetingDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meeting Meeting
		if err := tx.First(&meeting, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMeetingNotFound
			}

			return err
		}

		if err := tx.Model(&GameRecord{}).
			Where("meeting_id = ?", id).
			Update("meeting_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("meeting_id = ?", id).Delete(&MeetingParticipant{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&meeting).Association("PlannedGames").Clear(); err != nil {
			return err
		}

		return tx.Delete(&meeting).Error
	})
}

// UpsertParticipant inserts a participant row or, when the (meeting,
// player) pair already exists, updates arrival time and status.
func (d *MeetingDAO) UpsertParticipant(ctx context.Context, participant MeetingParticipant) (MeetingParticipant, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&Meeting{}, participant.MeetingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMeetingNotFound
			}

			return err
		}

		if err := tx.First(&Player{}, participant.PlayerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlayerNotFound
			}

			return err
		}

		var existing MeetingParticipant
		err := tx.Where("meeting_id = ? AND player_id = ?", participant.MeetingID, participant.PlayerID).
			First(&existing).Error
		if err == nil {
			existing.ArrivalTime = participant.ArrivalTime
			existing.Status = participant.Status
			participant = existing

			return tx.Save(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err = tx.Create(&participant).Error; err != nil {
			// A concurrent insert of the same pair loses the race on
			// idx_meeting_player; retry as an update.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return tx.Model(&MeetingParticipant{}).
					Where("meeting_id = ? AND player_id = ?", participant.MeetingID, participant.PlayerID).
					Updates(map[string]any{
						"arrival_time": participant.ArrivalTime,
						"status":       participant.Status,
					}).Error
			}

			return err
		}

		return nil
	})
	if err != nil {
		return MeetingParticipant{}, err
	}

	return participant, nil
}

func (d *MeetingDAO) FindParticipants(ctx context.Context, meetingID uint) ([]MeetingParticipant, error) {
	var participants []MeetingParticipant

	result := d.db.WithContext(ctx).
		Preload("Player").
		Where("meeting_id = ?", meetingID).
		Order("id").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *MeetingDAO) CountRecords(ctx context.Context, meetingID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&GameRecord{}).
		Where("meeting_id = ?", meetingID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *MeetingDAO) CountConfirmedParticipants(ctx context.Context, meetingID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&MeetingParticipant{}).
		Where("meeting_id = ? AND status = ?", meetingID, "confirmed").
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
