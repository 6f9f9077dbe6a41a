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

type PlayerService interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	GetPlayer(ctx context.Context, id uint) (domain.Player, []domain.HistoryEntry, error)
	CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error)
	UpdatePlayer(ctx context.Context, player domain.Player) (domain.Player, error)
	DeletePlayer(ctx context.Context, id uint) error
}

type PlayerHandler struct {
	svc PlayerService
}

func NewPlayerHandler(svc PlayerService) *PlayerHandler {
	return &PlayerHandler{
		svc: svc,
	}
}

// HandleListPlayers godoc
// @Summary      List players
// @Tags         players
// @Produce      json
// @Success      200  {array}   domain.Player
// @Failure      500  {object}  response.Err
// @Router       /players [get]
func (h *PlayerHandler) HandleListPlayers(ctx *gin.Context) {
	players, err := h.svc.ListPlayers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListPlayers -> h.svc.ListPlayers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, players)
}

// HandleGetPlayer godoc
// @Summary      Get a player
// @Description  Retrieves a player together with their game history
// @Tags         players
// @Produce      json
// @Param        playerID  path      int  true  "Player ID"
// @Success      200  {object}  response.PlayerWithHistory
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /players/{playerID} [get]
func (h *PlayerHandler) HandleGetPlayer(ctx *gin.Context) {
	playerID, err := strconv.ParseUint(ctx.Param("playerID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid player ID: %w", err)))
		return
	}

	player, history, err := h.svc.GetPlayer(ctx.Request.Context(), uint(playerID))
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("player", "ID", playerID))
			return
		}

		err = fmt.Errorf("HandleGetPlayer -> h.svc.GetPlayer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPlayerWithHistory(player, history))
}

// HandleCreatePlayer godoc
// @Summary      Create a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreatePlayerRequest  true  "Player details"
// @Success      201  {object}  domain.Player
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /players [post]
func (h *PlayerHandler) HandleCreatePlayer(ctx *gin.Context) {
	var input request.CreatePlayerRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	player := domain.Player{
		Name:      input.Name,
		BirthYear: input.BirthYear,
		MBTI:      input.MBTI,
		Location:  input.Location,
	}

	created, err := h.svc.CreatePlayer(ctx.Request.Context(), player)
	if err != nil {
		err = fmt.Errorf("HandleCreatePlayer -> h.svc.CreatePlayer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdatePlayer godoc
// @Summary      Update a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        playerID  path      int                          true  "Player ID"
// @Param        input     body      request.UpdatePlayerRequest  true  "Player details"
// @Success      200  {object}  domain.Player
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /players/{playerID} [put]
func (h *PlayerHandler) HandleUpdatePlayer(ctx *gin.Context) {
	playerID, err := strconv.ParseUint(ctx.Param("playerID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid player ID: %w", err)))
		return
	}

	var input request.UpdatePlayerRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	player := domain.Player{
		ID:        uint(playerID),
		Name:      input.Name,
		BirthYear: input.BirthYear,
		MBTI:      input.MBTI,
		Location:  input.Location,
	}

	updated, err := h.svc.UpdatePlayer(ctx.Request.Context(), player)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("player", "ID", playerID))
			return
		}

		err = fmt.Errorf("HandleUpdatePlayer -> h.svc.UpdatePlayer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeletePlayer godoc
// @Summary      Delete a player
// @Description  Deletes a player and every game result attributed to them
// @Tags         players
// @Produce      json
// @Param        playerID  path      int  true  "Player ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /players/{playerID} [delete]
func (h *PlayerHandler) HandleDeletePlayer(ctx *gin.Context) {
	playerID, err := strconv.ParseUint(ctx.Param("playerID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid player ID: %w", err)))
		return
	}

	if err = h.svc.DeletePlayer(ctx.Request.Context(), uint(playerID)); err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("player", "ID", playerID))
			return
		}

		err = fmt.Errorf("HandleDeletePlayer -> h.svc.DeletePlayer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "player deleted"})
}
