package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
)

type Player struct {
	ID uint `gorm:"primaryKey"`

	Name      string `gorm:"size:100;not null"`
	BirthYear *int
	MBTI      string `gorm:"size:4"`
	Location  string `gorm:"size:100"`
}

type PlayerDAO struct {
	db *gorm.DB
}

func NewPlayerDAO(db *gorm.DB) *PlayerDAO {
	return &PlayerDAO{
		db: db,
	}
}

func (d *PlayerDAO) Insert(ctx context.Context, player Player) (Player, error) {
	result := d.db.WithContext(ctx).Create(&player)
	if result.Error != nil {
		return Player{}, result.Error
	}

	return player, nil
}

func (d *PlayerDAO) FindAll(ctx context.Context) ([]Player, error) {
	var players []Player

	result := d.db.WithContext(ctx).Order("id").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (d *PlayerDAO) FindByID(ctx context.Context, id uint) (Player, error) {
	var player Player

	result := d.db.WithContext(ctx).First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Player{}, ErrPlayerNotFound
		}

		return Player{}, result.Error
	}

	return player, nil
}

func (d *PlayerDAO) Update(ctx context.Context, player Player) (Player, error) {
	result := d.db.WithContext(ctx).Model(&Player{}).
		Where("id = ?", player.ID).
		Select("Name", "BirthYear", "MBTI", "Location").
		Updates(player)
	if result.Error != nil {
		return Player{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Player{}, ErrPlayerNotFound
	}

	return player, nil
}

// Delete removes a player and every game result referencing them.
// Unregistered results in the same records are untouched.
func (d *PlayerDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var player Player
		if err := tx.First(&player, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlayerNotFound
			}

			return err
		}

		if err := tx.Where("player_id = ?", id).Delete(&GameResult{}).Error; err != nil {
			return err
		}

		if err := tx.Where("player_id = ?", id).Delete(&MeetingParticipant{}).Error; err != nil {
			return err
		}

		return tx.Delete(&player).Error
	})
}
