package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/meeplebook/api/internal/api/handler/v1/response"
	"github.com/meeplebook/api/internal/domain"
	"github.com/meeplebook/api/internal/service"
)

type StatsService interface {
	GameDetail(ctx context.Context, gameID uint) (domain.GameDetail, error)
	PlayerDetail(ctx context.Context, playerID uint) (domain.PlayerDetail, error)
	GlobalStats(ctx context.Context, popularLimit, minPlays, leaderboardLimit int) (domain.GlobalStats, error)
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{
		svc: svc,
	}
}

// HandleGlobalStats godoc
// @Summary      Get global statistics
// @Description  Returns the most played games, the leaderboard, the most active players and the player-count distribution
// @Tags         stats
// @Produce      json
// @Param        limit      query     int  false  "Number of entries per list"  default(5)
// @Param        min_plays  query     int  false  "Minimum plays for the leaderboard"  default(1)
// @Success      200  {object}  domain.GlobalStats
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stats [get]
func (h *StatsHandler) HandleGlobalStats(ctx *gin.Context) {
	limit, err := intQueryWithDefault(ctx, "limit", service.DefaultPopularLimit)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	minPlays, err := intQueryWithDefault(ctx, "min_plays", service.DefaultMinPlays)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stats, err := h.svc.GlobalStats(ctx.Request.Context(), limit, minPlays, limit)
	if err != nil {
		err = fmt.Errorf("HandleGlobalStats -> h.svc.GlobalStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleGetPlayerStats godoc
// @Summary      Get player statistics
// @Description  Returns a player's totals, win rate, per-game breakdown and full play history
// @Tags         stats
// @Produce      json
// @Param        playerID  path      int  true  "Player ID"
// @Success      200  {object}  domain.PlayerDetail
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stats/players/{playerID} [get]
func (h *StatsHandler) HandleGetPlayerStats(ctx *gin.Context) {
	playerID, err := strconv.ParseUint(ctx.Param("playerID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid player ID: %w", err)))
		return
	}

	detail, err := h.svc.PlayerDetail(ctx.Request.Context(), uint(playerID))
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("player", "ID", playerID))
			return
		}

		err = fmt.Errorf("HandleGetPlayerStats -> h.svc.PlayerDetail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

func intQueryWithDefault(ctx *gin.Context, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %v: %q", name, raw)
	}

	return value, nil
}
