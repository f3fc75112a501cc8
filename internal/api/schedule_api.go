package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Ardenhero/classtrack/internal/model"
	"github.com/Ardenhero/classtrack/internal/service"
)

type scheduleAPI struct {
	service *service.ScheduleService
}

// dayList принимает дни строкой ("Mon,Wed") или массивом (["Mon","Wed"])
type dayList string

func (d *dayList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = dayList(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.New("days must be a string or an array of strings")
	}
	*d = dayList(strings.Join(list, ","))
	return nil
}

type createScheduleRequest struct {
	InstructorID string  `json:"instructor_id" validate:"required,uuid"`
	RoomID       *string `json:"room_id" validate:"omitempty,uuid"`
	Days         dayList `json:"days"`
	StartTime    string  `json:"start_time" validate:"required"`
	EndTime      string  `json:"end_time" validate:"required"`
}

type scheduleResponse struct {
	Entries []model.ScheduleEntry `json:"entries"`
}

func registerScheduleAPI(g *echo.Group, svc *service.ScheduleService) {
	api := scheduleAPI{service: svc}

	g.POST("/schedules", api.create)
	g.GET("/instructors/:id/schedules", api.list)
	g.DELETE("/schedules/:entry_id", api.remove)
}

func (api *scheduleAPI) create(ctx echo.Context) error {
	req := new(createScheduleRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	in := service.ScheduleInput{
		InstructorID: uuid.MustParse(req.InstructorID),
		Days:         string(req.Days),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}
	if req.RoomID != nil {
		roomID := uuid.MustParse(*req.RoomID)
		in.RoomID = &roomID
	}

	created, err := api.service.AddEntries(ctx.Request().Context(), in)
	if err != nil {
		return err
	}

	resp := scheduleResponse{Entries: make([]model.ScheduleEntry, 0, len(created))}
	for _, e := range created {
		resp.Entries = append(resp.Entries, *e)
	}
	return ctx.JSON(http.StatusCreated, resp)
}

func (api *scheduleAPI) list(ctx echo.Context) error {
	id, err := instructorIDParam(ctx)
	if err != nil {
		return err
	}

	entries, err := api.service.ListEntries(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []model.ScheduleEntry{}
	}

	return ctx.JSON(http.StatusOK, scheduleResponse{Entries: entries})
}

func (api *scheduleAPI) remove(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("entry_id"), 10, 64)
	if err != nil || id <= 0 {
		return errInvalidEntryID
	}

	if err := api.service.RemoveEntry(ctx.Request().Context(), id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
