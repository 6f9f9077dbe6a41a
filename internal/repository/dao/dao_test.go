package dao

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%v?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	return db
}

func seedPlayer(t *testing.T, db *gorm.DB, name string) Player {
	t.Helper()

	player := Player{Name: name}
	require.NoError(t, db.Create(&player).Error)

	return player
}

func seedGame(t *testing.T, db *gorm.DB, name string) Game {
	t.Helper()

	game := Game{Name: name}
	require.NoError(t, db.Create(&game).Error)

	return game
}

func seedMeeting(t *testing.T, db *gorm.DB, location string, hostID *uint) Meeting {
	t.Helper()

	meeting := Meeting{
		Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Location: location,
		HostID:   hostID,
	}
	require.NoError(t, db.Create(&meeting).Error)

	return meeting
}

func seedRecord(t *testing.T, db *gorm.DB, gameID uint, meetingID *uint, date time.Time) GameRecord {
	t.Helper()

	record := GameRecord{GameID: gameID, MeetingID: meetingID, Date: date}
	require.NoError(t, db.Create(&record).Error)

	return record
}

func seedResult(t *testing.T, db *gorm.DB, recordID uint, playerID *uint, playerName string, score int, isWinner bool) GameResult {
	t.Helper()

	result := GameResult{
		GameRecordID: recordID,
		PlayerID:     playerID,
		PlayerName:   playerName,
		Score:        score,
		IsWinner:     isWinner,
	}
	require.NoError(t, db.Create(&result).Error)

	return result
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)

	return n
}
