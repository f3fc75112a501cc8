package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/model"
)

func TestRegisterInstructor(t *testing.T) {
	instructors := newFakeInstructors()
	svc := NewDirectoryService(instructors, newFakeRooms(), zap.NewNop())

	tg := int64(42)
	first, err := svc.RegisterInstructor(context.Background(), "  Ms. Reyes ", &tg)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, "Ms. Reyes", first.Name)

	_, err = svc.RegisterInstructor(context.Background(), "Mr. Cruz", &tg)
	assert.ErrorIs(t, err, model.ErrAlreadyExists)

	second, err := svc.RegisterInstructor(context.Background(), "Mr. Cruz", nil)
	require.NoError(t, err)
	assert.Nil(t, second.TelegramID)
}

func TestLinkTelegram(t *testing.T) {
	tg := int64(42)
	owner := &model.Instructor{ID: uuid.New(), Name: "Ms. Reyes", TelegramID: &tg}
	other := &model.Instructor{ID: uuid.New(), Name: "Mr. Cruz"}
	instructors := newFakeInstructors(owner, other)
	svc := NewDirectoryService(instructors, newFakeRooms(), zap.NewNop())

	// тот же аккаунт тому же преподавателю
	require.NoError(t, svc.LinkTelegram(context.Background(), owner.ID, tg))

	err := svc.LinkTelegram(context.Background(), other.ID, tg)
	assert.ErrorIs(t, err, model.ErrAlreadyExists)

	require.NoError(t, svc.LinkTelegram(context.Background(), other.ID, 7))
	require.NotNil(t, other.TelegramID)
	assert.Equal(t, int64(7), *other.TelegramID)

	err = svc.LinkTelegram(context.Background(), uuid.New(), 8)
	assert.ErrorIs(t, err, model.ErrSubjectNotFound)
}

func TestRegisterRoom(t *testing.T) {
	rooms := newFakeRooms()
	svc := NewDirectoryService(newFakeInstructors(), rooms, zap.NewNop())

	room, err := svc.RegisterRoom(context.Background(), "Lab 301")
	require.NoError(t, err)
	assert.Equal(t, "Lab 301", room.Name)

	_, err = svc.RegisterRoom(context.Background(), "lab 301")
	assert.ErrorIs(t, err, model.ErrAlreadyExists)

	rooms.err = errors.New("db down")
	_, err = svc.RegisterRoom(context.Background(), "Hall A")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrAlreadyExists)
}

func TestRegisterRoomConflictOnInsert(t *testing.T) {
	// параллельная регистрация: проверка прошла, вставка упала на уникальном индексе
	rooms := newFakeRooms()
	rooms.createErr = fmt.Errorf("create room: %w: room %q", model.ErrAlreadyExists, "Lab")
	svc := NewDirectoryService(newFakeInstructors(), rooms, zap.NewNop())

	_, err := svc.RegisterRoom(context.Background(), "Lab")
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
}
