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

type MeetingService interface {
	ListMeetings(ctx context.Context) ([]domain.MeetingSummary, error)
	GetMeeting(ctx context.Context, id uint) (domain.MeetingDetail, error)
	CreateMeeting(ctx context.Context, meeting domain.Meeting, plannedGameIDs []uint) (domain.Meeting, error)
	DeleteMeeting(ctx context.Context, id uint) error
	AddParticipant(ctx context.Context, participant domain.MeetingParticipant) (domain.MeetingParticipant, error)
}

type MeetingHandler struct {
	svc MeetingService
}

func NewMeetingHandler(svc MeetingService) *MeetingHandler {
	return &MeetingHandler{
		svc: svc,
	}
}

// HandleListMeetings godoc
// @Summary      List meetings
// @Description  Retrieves all meetings newest first, with game and participant counts
// @Tags         meetings
// @Produce      json
// @Success      200  {array}   response.Meeting
// @Failure      500  {object}  response.Err
// @Router       /meetings [get]
func (h *MeetingHandler) HandleListMeetings(ctx *gin.Context) {
	meetings, err := h.svc.ListMeetings(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListMeetings -> h.svc.ListMeetings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMeetingSummaries(meetings))
}

// HandleGetMeeting godoc
// @Summary      Get a meeting
// @Description  Retrieves a meeting with participants and game records
// @Tags         meetings
// @Produce      json
// @Param        meetingID  path      int  true  "Meeting ID"
// @Success      200  {object}  response.MeetingDetail
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /meetings/{meetingID} [get]
func (h *MeetingHandler) HandleGetMeeting(ctx *gin.Context) {
	meetingID, err := strconv.ParseUint(ctx.Param("meetingID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid meeting ID: %w", err)))
		return
	}

	detail, err := h.svc.GetMeeting(ctx.Request.Context(), uint(meetingID))
	if err != nil {
		if errors.Is(err, service.ErrMeetingNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("meeting", "ID", meetingID))
			return
		}

		err = fmt.Errorf("HandleGetMeeting -> h.svc.GetMeeting -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMeetingDetail(detail))
}

// HandleCreateMeeting godoc
// @Summary      Create a meeting
// @Description  Creates a meeting with a required host and optional planned games
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateMeetingRequest  true  "Meeting details"
// @Success      201  {object}  response.Meeting
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /meetings [post]
func (h *MeetingHandler) HandleCreateMeeting(ctx *gin.Context) {
	var input request.CreateMeetingRequest
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

	meeting := domain.Meeting{
		Date:        date,
		Location:    input.Location,
		Description: input.Description,
		HostID:      &input.HostID,
	}

	created, err := h.svc.CreateMeeting(ctx.Request.Context(), meeting, input.PlannedGames)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlayerNotFound):
			response.RenderErr(ctx, response.ErrNotFound("player", "ID", input.HostID))
		case errors.Is(err, service.ErrHostRequired):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleCreateMeeting -> h.svc.CreateMeeting -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewCreatedMeeting(created))
}

// HandleDeleteMeeting godoc
// @Summary      Delete a meeting
// @Description  Deletes a meeting; game records played there are kept and detached
// @Tags         meetings
// @Produce      json
// @Param        meetingID  path      int  true  "Meeting ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /meetings/{meetingID} [delete]
func (h *MeetingHandler) HandleDeleteMeeting(ctx *gin.Context) {
	meetingID, err := strconv.ParseUint(ctx.Param("meetingID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid meeting ID: %w", err)))
		return
	}

	if err = h.svc.DeleteMeeting(ctx.Request.Context(), uint(meetingID)); err != nil {
		if errors.Is(err, service.ErrMeetingNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("meeting", "ID", meetingID))
			return
		}

		err = fmt.Errorf("HandleDeleteMeeting -> h.svc.DeleteMeeting -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "meeting deleted"})
}

// HandleAddParticipant godoc
// @Summary      Add a participant to a meeting
// @Description  Adds a player to a meeting; re-adding the same player updates arrival time and status
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        meetingID  path      int                            true  "Meeting ID"
// @Param        input      body      request.AddParticipantRequest  true  "Participant details"
// @Success      200  {object}  response.Participant
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /meetings/{meetingID}/participants [post]
func (h *MeetingHandler) HandleAddParticipant(ctx *gin.Context) {
	meetingID, err := strconv.ParseUint(ctx.Param("meetingID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid meeting ID: %w", err)))
		return
	}

	var input request.AddParticipantRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	arrivalTime, err := time.Parse("15:04", input.ArrivalTime)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid time format: %w", err)))
		return
	}

	participant := domain.MeetingParticipant{
		MeetingID:   uint(meetingID),
		PlayerID:    input.PlayerID,
		ArrivalTime: arrivalTime,
		Status:      domain.ParticipantStatus(input.Status),
	}

	upserted, err := h.svc.AddParticipant(ctx.Request.Context(), participant)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMeetingNotFound):
			response.RenderErr(ctx, response.ErrNotFound("meeting", "ID", meetingID))
		case errors.Is(err, service.ErrPlayerNotFound):
			response.RenderErr(ctx, response.ErrNotFound("player", "ID", input.PlayerID))
		default:
			err = fmt.Errorf("HandleAddParticipant -> h.svc.AddParticipant -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipant(upserted))
}
