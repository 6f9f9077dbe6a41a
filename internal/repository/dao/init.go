package dao

import "gorm.io/gorm"

// InitTables is the single versioned schema definition. Migrations are
// forward-only through gorm's AutoMigrate; no runtime schema probing.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Player{},
		&Game{},
		&Meeting{},
		&MeetingParticipant{},
		&GameRecord{},
		&GameResult{},
	)
}
