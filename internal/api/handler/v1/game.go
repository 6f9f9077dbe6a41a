package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/meeplebook/api/internal/api/handler/v1/request"
	"github.com/meeplebook/api/internal/api/handler/v1/response"
	"github.com/meeplebook/api/internal/domain"
	"github.com/meeplebook/api/internal/service"
)

type GameService interface {
	ListGames(ctx context.Context) ([]domain.Game, error)
	CreateGame(ctx context.Context, game domain.Game) (domain.Game, error)
	UpdateGame(ctx context.Context, game domain.Game) (domain.Game, error)
	DeleteGame(ctx context.Context, id uint) error
}

type GameHandler struct {
	svc      GameService
	statsSvc StatsService
}

func NewGameHandler(svc GameService, statsSvc StatsService) *GameHandler {
	return &GameHandler{
		svc:      svc,
		statsSvc: statsSvc,
	}
}

// HandleListGames godoc
// @Summary      List games
// @Tags         games
// @Produce      json
// @Success      200  {array}   domain.Game
// @Failure      500  {object}  response.Err
// @Router       /games [get]
func (h *GameHandler) HandleListGames(ctx *gin.Context) {
	games, err := h.svc.ListGames(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListGames -> h.svc.ListGames -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, games)
}

// HandleGetGame godoc
// @Summary      Get a game
// @Description  Retrieves a game together with its aggregate statistics
// @Tags         games
// @Produce      json
// @Param        gameID  path      int  true  "Game ID"
// @Success      200  {object}  domain.GameDetail
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /games/{gameID} [get]
func (h *GameHandler) HandleGetGame(ctx *gin.Context) {
	gameID, err := strconv.ParseUint(ctx.Param("gameID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid game ID: %w", err)))
		return
	}

	detail, err := h.statsSvc.GameDetail(ctx.Request.Context(), uint(gameID))
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("game", "ID", gameID))
			return
		}

		err = fmt.Errorf("HandleGetGame -> h.statsSvc.GameDetail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// HandleCreateGame godoc
// @Summary      Create a game
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateGameRequest  true  "Game details"
// @Success      201  {object}  domain.Game
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /games [post]
func (h *GameHandler) HandleCreateGame(ctx *gin.Context) {
	var input request.CreateGameRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	game := domain.Game{
		Name:        input.Name,
		Description: input.Description,
	}

	created, err := h.svc.CreateGame(ctx.Request.Context(), game)
	if err != nil {
		err = fmt.Errorf("HandleCreateGame -> h.svc.CreateGame -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateGame godoc
// @Summary      Update a game
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        gameID  path      int                        true  "Game ID"
// @Param        input   body      request.UpdateGameRequest  true  "Game details"
// @Success      200  {object}  domain.Game
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /games/{gameID} [put]
func (h *GameHandler) HandleUpdateGame(ctx *gin.Context) {
	gameID, err := strconv.ParseUint(ctx.Param("gameID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid game ID: %w", err)))
		return
	}

	var input request.UpdateGameRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	game := domain.Game{
		ID:          uint(gameID),
		Name:        input.Name,
		Description: input.Description,
	}

	updated, err := h.svc.UpdateGame(ctx.Request.Context(), game)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("game", "ID", gameID))
			return
		}

		err = fmt.Errorf("HandleUpdateGame -> h.svc.UpdateGame -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game together with its records and results
// @Tags         games
// @Produce      json
// @Param        gameID  path      int  true  "Game ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /games/{gameID} [delete]
func (h *GameHandler) HandleDeleteGame(ctx *gin.Context) {
	gameID, err := strconv.ParseUint(ctx.Param("gameID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid game ID: %w", err)))
		return
	}

	if err = h.svc.DeleteGame(ctx.Request.Context(), uint(gameID)); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("game", "ID", gameID))
			return
		}

		err = fmt.Errorf("HandleDeleteGame -> h.svc.DeleteGame -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "game deleted"})
}
