package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrGameNotFound = errors.New("game not found")
)

type Game struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:500"`

	CreatedAt time.Time
}

type GameDAO struct {
	db *gorm.DB
}

func NewGameDAO(db *gorm.DB) *GameDAO {
	return &GameDAO{
		db: db,
	}
}

func (d *GameDAO) Insert(ctx context.Context, game Game) (Game, error) {
	result := d.db.WithContext(ctx).Create(&game)
	if result.Error != nil {
		return Game{}, result.Error
	}

	return game, nil
}

func (d *GameDAO) FindAll(ctx context.Context) ([]Game, error) {
	var games []Game

	result := d.db.WithContext(ctx).Order("id").Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}

	return games, nil
}

func (d *GameDAO) FindByID(ctx context.Context, id uint) (Game, error) {
	var game Game

	result := d.db.WithContext(ctx).First(&game, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Game{}, ErrGameNotFound
		}

		return Game{}, result.Error
	}

	return game, nil
}

func (d *GameDAO) Update(ctx context.Context, game Game) (Game, error) {
	result := d.db.WithContext(ctx).Model(&Game{}).
		Where("id = ?", game.ID).
		Select("Name", "Description").
		Updates(game)
	if result.Error != nil {
		return Game{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Game{}, ErrGameNotFound
	}

	return game, nil
}

// Delete removes a game together with its game records and their
// results.
func (d *GameDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game Game
		if err := tx.First(&game, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}

			return err
		}

		var recordIDs []uint
		if err := tx.Model(&GameRecord{}).
			Where("game_id = ?", id).
			Pluck("id", &recordIDs).Error; err != nil {
			return err
		}

		if len(recordIDs) > 0 {
			if err := tx.Where("game_record_id IN ?", recordIDs).Delete(&GameResult{}).Error; err != nil {
				return err
			}

			if err := tx.Where("id IN ?", recordIDs).Delete(&GameRecord{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&game).Error
	})
}
