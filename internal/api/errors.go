package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/model"
)

var (
	errInvalidInstructorID = echo.NewHTTPError(http.StatusBadRequest, "invalid instructor id")
	errInvalidRoomID       = echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	errInvalidEntryID      = echo.NewHTTPError(http.StatusBadRequest, "invalid schedule entry id")
)

// newHTTPErrorHandler переводит ошибки сервиса в HTTP ответы
func newHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var (
			code    int
			message any
			httpErr *echo.HTTPError
			valErrs validator.ValidationErrors
		)

		switch {
		case errors.As(err, &httpErr):
			code = httpErr.Code
			message = httpErr.Message
		case errors.As(err, &valErrs):
			fields := make(map[string]string, len(valErrs))
			for _, fe := range valErrs {
				fields[fe.Field()] = fe.Tag()
			}
			code = http.StatusBadRequest
			message = echo.Map{"error": "validation failed", "fields": fields}
		case errors.Is(err, model.ErrInvalidScheduleEntry):
			code = http.StatusBadRequest
			message = err.Error()
		case errors.Is(err, model.ErrSubjectNotFound):
			code = http.StatusNotFound
			message = "instructor not found"
		case errors.Is(err, model.ErrRoomNotFound):
			code = http.StatusNotFound
			message = "room not found"
		case errors.Is(err, model.ErrEntryNotFound):
			code = http.StatusNotFound
			message = "schedule entry not found"
		case errors.Is(err, model.ErrAlreadyExists):
			code = http.StatusConflict
			message = err.Error()
		default: // any other error is a server error
			code = http.StatusInternalServerError
			message = http.StatusText(http.StatusInternalServerError)
			logger.Error("Unhandled HTTP error",
				zap.String("method", ctx.Request().Method),
				zap.String("path", ctx.Path()),
				zap.Error(err))
		}

		if ctx.Echo().Debug && code == http.StatusInternalServerError {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		if ctx.Response().Committed {
			return
		}
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, message)
		}
		if err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
	}
}
