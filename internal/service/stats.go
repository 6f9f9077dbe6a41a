package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/meeplebook/api/internal/domain"
)

const (
	DefaultPopularLimit     = 5
	DefaultLeaderboardLimit = 5
	DefaultMinPlays         = 1
)

// StatsService derives read-side statistics from records and results.
// It is stateless; every call folds over the store's current snapshot
// and never writes.
type StatsService struct {
	playerRepo PlayerRepository
	gameRepo   GameRepository
	recordRepo RecordRepository
}

func NewStatsService(playerRepo PlayerRepository, gameRepo GameRepository, recordRepo RecordRepository) *StatsService {
	return &StatsService{
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		recordRepo: recordRepo,
	}
}

// Round1 rounds to one decimal place, halves away from zero. This is
// the rounding contract of every percentage and average in the API.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// winRate is wins/plays as a rounded percentage, 0 when plays is 0.
func winRate(wins, plays int) float64 {
	if plays == 0 {
		return 0
	}

	return Round1(float64(wins) / float64(plays) * 100)
}

// GameDetail aggregates one game's records: total plays, per registered
// player plays/wins/win-rate, the average score over every result
// (unregistered included) and the overall win rate.
func (s *StatsService) GameDetail(ctx context.Context, gameID uint) (domain.GameDetail, error) {
	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return domain.GameDetail{}, fmt.Errorf("s.gameRepo.FindByID -> %w", err)
	}

	records, err := s.recordRepo.FindByGameIDWithResults(ctx, gameID)
	if err != nil {
		return domain.GameDetail{}, fmt.Errorf("s.recordRepo.FindByGameIDWithResults -> %w", err)
	}

	names, err := s.playerNames(ctx)
	if err != nil {
		return domain.GameDetail{}, err
	}

	detail := domain.GameDetail{
		Game:       game,
		TotalPlays: len(records),
	}

	perPlayer := make(map[uint]*domain.PlayerGameStat)
	totalScore := 0
	totalResults := 0
	totalWins := 0

	for _, record := range records {
		for _, res := range record.Results {
			totalResults++
			totalScore += res.Score

			if !res.Participant.Registered() {
				continue
			}

			playerID := res.Participant.PlayerID()
			stat, ok := perPlayer[playerID]
			if !ok {
				name, known := names[playerID]
				if !known {
					name = "Unknown"
				}
				stat = &domain.PlayerGameStat{PlayerID: playerID, PlayerName: name}
				perPlayer[playerID] = stat
			}

			stat.Plays++
			if res.IsWinner {
				stat.Wins++
				totalWins++
			}
		}
	}

	detail.TotalPlayers = len(perPlayer)
	if totalResults > 0 {
		detail.AverageScore = Round1(float64(totalScore) / float64(totalResults))
		detail.WinRate = Round1(float64(totalWins) / float64(totalResults) * 100)
	}

	detail.PlayerStats = make([]domain.PlayerGameStat, 0, len(perPlayer))
	for _, stat := range perPlayer {
		stat.WinRate = winRate(stat.Wins, stat.Plays)
		detail.PlayerStats = append(detail.PlayerStats, *stat)
	}
	sort.Slice(detail.PlayerStats, func(i, j int) bool {
		return detail.PlayerStats[i].PlayerID < detail.PlayerStats[j].PlayerID
	})

	return detail, nil
}

// PlayerDetail aggregates one player's results across games, most
// played games first.
func (s *StatsService) PlayerDetail(ctx context.Context, playerID uint) (domain.PlayerDetail, error) {
	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		return domain.PlayerDetail{}, fmt.Errorf("s.playerRepo.FindByID -> %w", err)
	}

	history, err := s.recordRepo.FindHistoryByPlayerID(ctx, playerID)
	if err != nil {
		return domain.PlayerDetail{}, fmt.Errorf("s.recordRepo.FindHistoryByPlayerID -> %w", err)
	}

	detail := domain.PlayerDetail{
		Player:  player,
		History: history,
	}

	perGame := make(map[uint]*domain.GameBreakdown)
	for _, entry := range history {
		breakdown, ok := perGame[entry.GameID]
		if !ok {
			breakdown = &domain.GameBreakdown{GameID: entry.GameID, GameName: entry.GameName}
			perGame[entry.GameID] = breakdown
		}

		breakdown.Plays++
		detail.TotalPlays++
		if entry.IsWinner {
			breakdown.Wins++
			detail.TotalWins++
		}
	}

	detail.WinRate = winRate(detail.TotalWins, detail.TotalPlays)

	detail.Games = make([]domain.GameBreakdown, 0, len(perGame))
	for _, breakdown := range perGame {
		breakdown.WinRate = winRate(breakdown.Wins, breakdown.Plays)
		detail.Games = append(detail.Games, *breakdown)
	}
	sort.Slice(detail.Games, func(i, j int) bool {
		if detail.Games[i].Plays != detail.Games[j].Plays {
			return detail.Games[i].Plays > detail.Games[j].Plays
		}
		return detail.Games[i].GameID < detail.Games[j].GameID
	})

	return detail, nil
}

// GlobalStats builds the dashboard payload: game popularity, the
// leaderboard, active players and the player-count histogram.
func (s *StatsService) GlobalStats(ctx context.Context, popularLimit, minPlays, leaderboardLimit int) (domain.GlobalStats, error) {
	if popularLimit <= 0 {
		popularLimit = DefaultPopularLimit
	}
	if minPlays <= 0 {
		minPlays = DefaultMinPlays
	}
	if leaderboardLimit <= 0 {
		leaderboardLimit = DefaultLeaderboardLimit
	}

	records, err := s.recordRepo.FindAllWithResults(ctx)
	if err != nil {
		return domain.GlobalStats{}, fmt.Errorf("s.recordRepo.FindAllWithResults -> %w", err)
	}

	games, err := s.gameRepo.FindAll(ctx)
	if err != nil {
		return domain.GlobalStats{}, fmt.Errorf("s.gameRepo.FindAll -> %w", err)
	}

	names, err := s.playerNames(ctx)
	if err != nil {
		return domain.GlobalStats{}, err
	}

	return domain.GlobalStats{
		PopularGames:  popularGames(records, games, popularLimit),
		TopWinners:    leaderboard(records, names, minPlays, leaderboardLimit),
		ActivePlayers: activePlayers(records, names, leaderboardLimit),
		PlayerCounts:  playerCountDistribution(records),
	}, nil
}

func (s *StatsService) playerNames(ctx context.Context) (map[uint]string, error) {
	players, err := s.playerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.playerRepo.FindAll -> %w", err)
	}

	names := make(map[uint]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	return names, nil
}

// popularGames ranks games by record count, ties broken by game id.
// Games never played are left out.
func popularGames(records []domain.GameRecord, games []domain.Game, limit int) []domain.PopularGame {
	counts := make(map[uint]int)
	for _, record := range records {
		counts[record.GameID]++
	}

	ranked := make([]domain.PopularGame, 0, len(counts))
	for _, game := range games {
		if counts[game.ID] == 0 {
			continue
		}
		ranked = append(ranked, domain.PopularGame{
			GameID:    game.ID,
			Name:      game.Name,
			PlayCount: counts[game.ID],
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].PlayCount != ranked[j].PlayCount {
			return ranked[i].PlayCount > ranked[j].PlayCount
		}
		return ranked[i].GameID < ranked[j].GameID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// leaderboard ranks registered players by wins among those with at
// least minPlays plays, ties broken by player id.
func leaderboard(records []domain.GameRecord, names map[uint]string, minPlays, limit int) []domain.LeaderboardEntry {
	perPlayer := make(map[uint]*domain.LeaderboardEntry)

	for _, record := range records {
		for _, res := range record.Results {
			if !res.Participant.Registered() {
				continue
			}

			playerID := res.Participant.PlayerID()
			entry, ok := perPlayer[playerID]
			if !ok {
				name, known := names[playerID]
				if !known {
					name = "Unknown"
				}
				entry = &domain.LeaderboardEntry{PlayerID: playerID, Name: name}
				perPlayer[playerID] = entry
			}

			entry.Plays++
			if res.IsWinner {
				entry.Wins++
			}
		}
	}

	ranked := make([]domain.LeaderboardEntry, 0, len(perPlayer))
	for _, entry := range perPlayer {
		if entry.Plays < minPlays {
			continue
		}
		entry.WinRate = winRate(entry.Wins, entry.Plays)
		ranked = append(ranked, *entry)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Wins != ranked[j].Wins {
			return ranked[i].Wins > ranked[j].Wins
		}
		return ranked[i].PlayerID < ranked[j].PlayerID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// activePlayers ranks registered players by the number of distinct
// meetings in which they have at least one result. Meetingless records
// do not count.
func activePlayers(records []domain.GameRecord, names map[uint]string, limit int) []domain.ActivePlayer {
	meetingsByPlayer := make(map[uint]map[uint]struct{})

	for _, record := range records {
		if record.MeetingID == nil {
			continue
		}

		for _, res := range record.Results {
			if !res.Participant.Registered() {
				continue
			}

			playerID := res.Participant.PlayerID()
			if meetingsByPlayer[playerID] == nil {
				meetingsByPlayer[playerID] = make(map[uint]struct{})
			}
			meetingsByPlayer[playerID][*record.MeetingID] = struct{}{}
		}
	}

	ranked := make([]domain.ActivePlayer, 0, len(meetingsByPlayer))
	for playerID, meetings := range meetingsByPlayer {
		name, known := names[playerID]
		if !known {
			name = "Unknown"
		}
		ranked = append(ranked, domain.ActivePlayer{
			PlayerID:     playerID,
			Name:         name,
			MeetingCount: len(meetings),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].MeetingCount != ranked[j].MeetingCount {
			return ranked[i].MeetingCount > ranked[j].MeetingCount
		}
		return ranked[i].PlayerID < ranked[j].PlayerID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// playerCountDistribution buckets every record by its registered result
// count. The 2..5 and "6+" buckets are always present; smaller counts
// appear under their literal label when they occur.
func playerCountDistribution(records []domain.GameRecord) map[string]int {
	buckets := map[string]int{
		"2": 0, "3": 0, "4": 0, "5": 0, "6+": 0,
	}

	for _, record := range records {
		count := 0
		for _, res := range record.Results {
			if res.Participant.Registered() {
				count++
			}
		}

		label := "6+"
		if count <= 5 {
			label = strconv.Itoa(count)
		}
		buckets[label]++
	}

	return buckets
}
