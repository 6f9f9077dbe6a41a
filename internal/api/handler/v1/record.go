package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meeplebook/api/internal/api/handler/v1/request"
	"github.com/meeplebook/api/internal/api/handler/v1/response"
	"github.com/meeplebook/api/internal/domain"
	"github.com/meeplebook/api/internal/service"
)

type RecordService interface {
	ListRecords(ctx context.Context, gameID, meetingID *uint) ([]domain.GameRecord, error)
	GetRecord(ctx context.Context, id uint) (domain.GameRecord, error)
	CreateRecord(ctx context.Context, draft domain.RecordDraft) (domain.GameRecord, error)
	DeleteRecord(ctx context.Context, id uint) error
}

type RecordHandler struct {
	svc RecordService
}

func NewRecordHandler(svc RecordService) *RecordHandler {
	return &RecordHandler{
		svc: svc,
	}
}

// HandleListRecords godoc
// @Summary      List game records
// @Description  Retrieves game records, optionally filtered by game_id or meeting_id
// @Tags         records
// @Produce      json
// @Param        game_id     query     int  false  "Filter by game"
// @Param        meeting_id  query     int  false  "Filter by meeting"
// @Success      200  {array}   response.GameRecord
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /records [get]
func (h *RecordHandler) HandleListRecords(ctx *gin.Context) {
	gameID, err := optionalUintQuery(ctx, "game_id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	meetingID, err := optionalUintQuery(ctx, "meeting_id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	records, err := h.svc.ListRecords(ctx.Request.Context(), gameID, meetingID)
	if err != nil {
		err = fmt.Errorf("HandleListRecords -> h.svc.ListRecords -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewGameRecords(records))
}

// HandleGetRecord godoc
// @Summary      Get a game record
// @Tags         records
// @Produce      json
// @Param        recordID  path      int  true  "Record ID"
// @Success      200  {object}  response.GameRecord
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /records/{recordID} [get]
func (h *RecordHandler) HandleGetRecord(ctx *gin.Context) {
	recordID, err := strconv.ParseUint(ctx.Param("recordID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid record ID: %w", err)))
		return
	}

	record, err := h.svc.GetRecord(ctx.Request.Context(), uint(recordID))
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("game record", "ID", recordID))
			return
		}

		err = fmt.Errorf("HandleGetRecord -> h.svc.GetRecord -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewGameRecord(record))
}

// HandleCreateRecord godoc
// @Summary      Create a game record
// @Description  Creates a game record with its results in one transaction. A new game and a new meeting can be created on the fly via new_game_name and meeting_location.
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateRecordRequest  true  "Record details"
// @Success      201  {object}  response.GameRecord
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /records [post]
func (h *RecordHandler) HandleCreateRecord(ctx *gin.Context) {
	var input request.CreateRecordRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %w", err)))
		return
	}

	draft := domain.RecordDraft{
		GameID: input.GameID,
		Date:   date,
	}

	if input.NewGameName != "" {
		draft.NewGame = &domain.GameDraft{
			Name:        input.NewGameName,
			Description: input.NewGameDescription,
		}
	}

	if input.MeetingLocation != "" {
		newMeeting := &domain.MeetingDraft{
			Location:    input.MeetingLocation,
			Description: input.MeetingDescription,
		}
		if input.MeetingHostID != 0 {
			hostID := input.MeetingHostID
			newMeeting.HostID = &hostID
		}
		draft.NewMeeting = newMeeting
	} else if input.MeetingID != 0 {
		meetingID := input.MeetingID
		draft.MeetingID = &meetingID
	}

	draft.Results = make([]domain.ResultDraft, len(input.Results))
	for i, res := range input.Results {
		var participant domain.Participant
		if res.PlayerID != 0 {
			participant = domain.RegisteredParticipant(res.PlayerID)
		} else {
			participant = domain.UnregisteredParticipant(res.PlayerName)
		}

		draft.Results[i] = domain.ResultDraft{
			Participant: participant,
			Score:       res.Score,
			IsWinner:    res.IsWinner,
		}
	}

	created, err := h.svc.CreateRecord(ctx.Request.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			response.RenderErr(ctx, response.ErrNotFound("game", "ID", input.GameID))
		case errors.Is(err, service.ErrMeetingNotFound):
			response.RenderErr(ctx, response.ErrNotFound("meeting", "ID", input.MeetingID))
		case errors.Is(err, service.ErrPlayerNotFound):
			response.RenderErr(ctx, response.ErrNotFound("player", "in", "results"))
		case errors.Is(err, service.ErrDateRequired),
			errors.Is(err, service.ErrGameRequired),
			errors.Is(err, service.ErrResultsRequired),
			errors.Is(err, service.ErrAmbiguousGame),
			errors.Is(err, service.ErrAmbiguousMeeting),
			errors.Is(err, service.ErrInvalidResult):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleCreateRecord -> h.svc.CreateRecord -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewGameRecord(created))
}

// HandleDeleteRecord godoc
// @Summary      Delete a game record
// @Description  Deletes a game record together with its results
// @Tags         records
// @Produce      json
// @Param        recordID  path      int  true  "Record ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /records/{recordID} [delete]
func (h *RecordHandler) HandleDeleteRecord(ctx *gin.Context) {
	recordID, err := strconv.ParseUint(ctx.Param("recordID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid record ID: %w", err)))
		return
	}

	if err = h.svc.DeleteRecord(ctx.Request.Context(), uint(recordID)); err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("game record", "ID", recordID))
			return
		}

		err = fmt.Errorf("HandleDeleteRecord -> h.svc.DeleteRecord -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "game record deleted"})
}

func optionalUintQuery(ctx *gin.Context, name string) (*uint, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %v: %w", name, err)
	}

	out := uint(value)
	return &out, nil
}
