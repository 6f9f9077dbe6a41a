package domain

// PlayerGameStat is one registered player's tally within a single game.
type PlayerGameStat struct {
	PlayerID   uint    `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Plays      int     `json:"plays"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"win_rate"`
}

// GameDetail is a game plus its aggregate statistics.
type GameDetail struct {
	Game
	TotalPlays   int              `json:"total_plays"`
	TotalPlayers int              `json:"total_players"`
	WinRate      float64          `json:"win_rate"`
	AverageScore float64          `json:"average_score"`
	PlayerStats  []PlayerGameStat `json:"player_stats"`
}

// GameBreakdown is one game's tally within a single player's history.
type GameBreakdown struct {
	GameID   uint    `json:"game_id"`
	GameName string  `json:"game_name"`
	Plays    int     `json:"plays"`
	Wins     int     `json:"wins"`
	WinRate  float64 `json:"win_rate"`
}

// HistoryEntry is one played result in a player's game history.
type HistoryEntry struct {
	ResultID        uint   `json:"id"`
	GameID          uint   `json:"game_id"`
	GameName        string `json:"game_name"`
	Score           int    `json:"score"`
	IsWinner        bool   `json:"is_winner"`
	MeetingID       *uint  `json:"meeting_id"`
	MeetingDate     string `json:"meeting_date"`
	MeetingLocation string `json:"meeting_location"`
}

// PlayerDetail is a player plus their cross-game statistics, games
// ordered by descending plays.
type PlayerDetail struct {
	Player
	TotalPlays int             `json:"total_plays"`
	TotalWins  int             `json:"total_wins"`
	WinRate    float64         `json:"win_rate"`
	Games      []GameBreakdown `json:"games"`
	History    []HistoryEntry  `json:"game_history"`
}

type PopularGame struct {
	GameID    uint   `json:"id"`
	Name      string `json:"name"`
	PlayCount int    `json:"count"`
}

type LeaderboardEntry struct {
	PlayerID uint    `json:"player_id"`
	Name     string  `json:"name"`
	Wins     int     `json:"wins"`
	Plays    int     `json:"plays"`
	WinRate  float64 `json:"win_rate"`
}

type ActivePlayer struct {
	PlayerID     uint   `json:"player_id"`
	Name         string `json:"name"`
	MeetingCount int    `json:"meeting_count"`
}

// GlobalStats is the dashboard payload.
type GlobalStats struct {
	PopularGames  []PopularGame      `json:"popular_games"`
	TopWinners    []LeaderboardEntry `json:"top_winners"`
	ActivePlayers []ActivePlayer     `json:"active_players"`
	PlayerCounts  map[string]int     `json:"player_counts"`
}
