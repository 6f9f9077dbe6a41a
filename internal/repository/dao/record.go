package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("game record not found")
)

type GameRecord struct {
	ID uint `gorm:"primaryKey"`

	GameID uint `gorm:"not null;index"`
	Game   Game `gorm:"foreignKey:GameID"`

	MeetingID *uint `gorm:"index"`

	Date time.Time `gorm:"not null"`

	Results []GameResult `gorm:"foreignKey:GameRecordID"`
}

type GameResult struct {
	ID uint `gorm:"primaryKey"`

	GameRecordID uint `gorm:"not null;index"`

	// PlayerID references a registered player; PlayerName carries the
	// display name of an unregistered one. Exactly one is populated.
	PlayerID   *uint   `gorm:"index"`
	Player     *Player `gorm:"foreignKey:PlayerID"`
	PlayerName string  `gorm:"size:100"`

	Score    int  `gorm:"default:0"`
	IsWinner bool `gorm:"default:false"`
}

// RecordFilter narrows record listings by foreign key.
type RecordFilter struct {
	GameID    *uint
	MeetingID *uint
}

// RecordDraft is the pre-validated input of the composite insert. When
// NewGame / NewMeeting are set, the rows are created inside the same
// transaction and the generated ids are used by the dependent rows.
type RecordDraft struct {
	GameID     uint
	NewGame    *Game
	MeetingID  *uint
	NewMeeting *Meeting
	Date       time.Time
	Results    []GameResult
}

type RecordDAO struct {
	db *gorm.DB
}

func NewRecordDAO(db *gorm.DB) *RecordDAO {
	return &RecordDAO{
		db: db,
	}
}

func (d *RecordDAO) FindAll(ctx context.Context, filter RecordFilter) ([]GameRecord, error) {
	var records []GameRecord

	query := d.db.WithContext(ctx).
		Preload("Game").
		Preload("Results").
		Preload("Results.Player")

	if filter.GameID != nil {
		query = query.Where("game_id = ?", *filter.GameID)
	}
	if filter.MeetingID != nil {
		query = query.Where("meeting_id = ?", *filter.MeetingID)
	}

	result := query.Order("date DESC, id DESC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (d *RecordDAO) FindByID(ctx context.Context, id uint) (GameRecord, error) {
	var record GameRecord

	result := d.db.WithContext(ctx).
		Preload("Game").
		Preload("Results").
		Preload("Results.Player").
		First(&record, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GameRecord{}, ErrRecordNotFound
		}

		return GameRecord{}, result.Error
	}

	return record, nil
}

func (d *RecordDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record GameRecord
		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}

			return err
		}

		if err := tx.Where("game_record_id = ?", id).Delete(&GameResult{}).Error; err != nil {
			return err
		}

		return tx.Delete(&record).Error
	})
}

// InsertFull runs the composite create as one transaction: resolve or
// create the game, optionally create or resolve the meeting, create the
// record, then every result. Any failure rolls the whole thing back; a
// result referencing an unknown player aborts rather than being skipped.
func (d *RecordDAO) InsertFull(ctx context.Context, draft RecordDraft) (GameRecord, error) {
	var created GameRecord

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		gameID := draft.GameID
		if draft.NewGame != nil {
			if err := tx.Create(draft.NewGame).Error; err != nil {
				return err
			}
			gameID = draft.NewGame.ID
		} else {
			if err := tx.First(&Game{}, gameID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrGameNotFound
				}

				return err
			}
		}

		meetingID := draft.MeetingID
		if draft.NewMeeting != nil {
			if draft.NewMeeting.HostID != nil {
				if err := tx.First(&Player{}, *draft.NewMeeting.HostID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrPlayerNotFound
					}

					return err
				}
			}

			if err := tx.Create(draft.NewMeeting).Error; err != nil {
				return err
			}
			meetingID = &draft.NewMeeting.ID
		} else if meetingID != nil {
			if err := tx.First(&Meeting{}, *meetingID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrMeetingNotFound
				}

				return err
			}
		}

		record := GameRecord{
			GameID:    gameID,
			MeetingID: meetingID,
			Date:      draft.Date,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		for i := range draft.Results {
			result := draft.Results[i]
			result.GameRecordID = record.ID

			if result.PlayerID != nil {
				if err := tx.First(&Player{}, *result.PlayerID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrPlayerNotFound
					}

					return err
				}
			}

			if err := tx.Create(&result).Error; err != nil {
				return err
			}
			record.Results = append(record.Results, result)
		}

		created = record

		return nil
	})
	if err != nil {
		return GameRecord{}, err
	}

	return created, nil
}

// FindAllWithResults loads every record with its results, the working
// set of the aggregate computations.
func (d *RecordDAO) FindAllWithResults(ctx context.Context) ([]GameRecord, error) {
	var records []GameRecord

	result := d.db.WithContext(ctx).Preload("Results").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (d *RecordDAO) FindByGameIDWithResults(ctx context.Context, gameID uint) ([]GameRecord, error) {
	var records []GameRecord

	result := d.db.WithContext(ctx).
		Preload("Results").
		Where("game_id = ?", gameID).
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// PlayerResultRow is one of a player's results joined with its record,
// game and (optional) meeting.
type PlayerResultRow struct {
	ResultID        uint
	GameRecordID    uint
	GameID          uint
	GameName        string
	Score           int
	IsWinner        bool
	MeetingID       *uint
	MeetingDate     *time.Time
	MeetingLocation *string
}

func (d *RecordDAO) FindResultsByPlayerID(ctx context.Context, playerID uint) ([]PlayerResultRow, error) {
	var rows []PlayerResultRow

	result := d.db.WithContext(ctx).
		Table("game_results").
		Select(`game_results.id AS result_id,
			game_results.game_record_id,
			game_records.game_id,
			games.name AS game_name,
			game_results.score,
			game_results.is_winner,
			game_records.meeting_id,
			meetings.date AS meeting_date,
			meetings.location AS meeting_location`).
		Joins("JOIN game_records ON game_records.id = game_results.game_record_id").
		Joins("JOIN games ON games.id = game_records.game_id").
		Joins("LEFT JOIN meetings ON meetings.id = game_records.meeting_id").
		Where("game_results.player_id = ?", playerID).
		Order("game_results.id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
