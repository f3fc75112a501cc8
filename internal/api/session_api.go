package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Ardenhero/classtrack/internal/service"
	"github.com/Ardenhero/classtrack/internal/session"
)

type sessionAPI struct {
	service *service.SessionService
}

type authorizeRequest struct {
	RoomID *string `json:"room_id" validate:"omitempty,uuid"`
}

type authorizeResponse struct {
	session.Decision
	Message string `json:"message"`
}

func registerSessionAPI(g *echo.Group, svc *service.SessionService) {
	api := sessionAPI{service: svc}

	ig := g.Group("/instructors/:id")
	ig.GET("/active-session", api.activeSession)
	ig.POST("/authorize", api.authorize)
}

func (api *sessionAPI) activeSession(ctx echo.Context) error {
	id, err := instructorIDParam(ctx)
	if err != nil {
		return err
	}

	cl, err := api.service.ClassifyNow(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, cl)
}

func (api *sessionAPI) authorize(ctx echo.Context) error {
	id, err := instructorIDParam(ctx)
	if err != nil {
		return err
	}

	req := new(authorizeRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	var roomID *uuid.UUID
	if req.RoomID != nil {
		parsed, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return errInvalidRoomID
		}
		roomID = &parsed
	}

	d, err := api.service.Authorize(ctx.Request().Context(), id, roomID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, authorizeResponse{
		Decision: d,
		Message:  service.ReasonMessage(d.Reason),
	})
}

func instructorIDParam(ctx echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, errInvalidInstructorID
	}
	return id, nil
}
