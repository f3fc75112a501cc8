package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInstructorAndLinkTelegram(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/instructors", map[string]any{"name": "Dr. Santos"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	id, ok := body["id"].(string)
	require.True(t, ok)
	assert.Equal(t, "Dr. Santos", body["name"])
	assert.Nil(t, body["telegram_id"])

	rec = env.do(t, http.MethodPut, "/v1/instructors/"+id+"/telegram", map[string]any{"telegram_id": 42})
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	// аккаунт уже занят
	rec = env.do(t, http.MethodPut, "/v1/instructors/"+env.teacher.ID.String()+"/telegram", map[string]any{"telegram_id": 42})
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPut, "/v1/instructors/"+uuid.NewString()+"/telegram", map[string]any{"telegram_id": 43})
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPut, "/v1/instructors/"+id+"/telegram", map[string]any{"telegram_id": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{"telegram_id": "required"}, decode(t, rec)["fields"])

	// новый преподаватель сразу есть в индексе
	rec = env.do(t, http.MethodPost, "/v1/instructors/"+id+"/authorize", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "no_entries", decode(t, rec)["reason"])
}

func TestCreateRoom(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/rooms", map[string]any{"name": "Lab 302"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Lab 302", decode(t, rec)["name"])

	rec = env.do(t, http.MethodPost, "/v1/rooms", map[string]any{"name": "lab 301"})
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/v1/rooms", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestDeleteSchedule(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/schedules", map[string]any{
		"instructor_id": env.teacher.ID.String(),
		"room_id":       env.lab.ID.String(),
		"days":          "Mon",
		"start_time":    "09:00",
		"end_time":      "10:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	entries := decode(t, rec)["entries"].([]any)
	require.Len(t, entries, 1)
	entryID := entries[0].(map[string]any)["id"].(float64)

	path := "/v1/schedules/" + formatID(entryID)
	rec = env.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodDelete, "/v1/schedules/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	// после удаления занятий у преподавателя нет
	rec = env.do(t, http.MethodPost, "/v1/instructors/"+env.teacher.ID.String()+"/authorize", map[string]any{
		"room_id": env.lab.ID.String(),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no_entries", decode(t, rec)["reason"])
}
