package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ardenhero/classtrack/internal/service"
)

type directoryAPI struct {
	service *service.DirectoryService
}

type createInstructorRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	TelegramID *int64 `json:"telegram_id" validate:"omitempty,gt=0"`
}

type linkTelegramRequest struct {
	TelegramID int64 `json:"telegram_id" validate:"required,gt=0"`
}

type createRoomRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func registerDirectoryAPI(g *echo.Group, svc *service.DirectoryService) {
	api := directoryAPI{service: svc}

	g.POST("/instructors", api.createInstructor)
	g.PUT("/instructors/:id/telegram", api.linkTelegram)
	g.POST("/rooms", api.createRoom)
}

func (api *directoryAPI) createInstructor(ctx echo.Context) error {
	req := new(createInstructorRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	instructor, err := api.service.RegisterInstructor(ctx.Request().Context(), req.Name, req.TelegramID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, instructor)
}

func (api *directoryAPI) linkTelegram(ctx echo.Context) error {
	id, err := instructorIDParam(ctx)
	if err != nil {
		return err
	}

	req := new(linkTelegramRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	if err := api.service.LinkTelegram(ctx.Request().Context(), id, req.TelegramID); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (api *directoryAPI) createRoom(ctx echo.Context) error {
	req := new(createRoomRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	room, err := api.service.RegisterRoom(ctx.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, room)
}
