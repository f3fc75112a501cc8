package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ardenhero/classtrack/internal/model"
)

// InstructorStore чтение преподавателей (repository.InstructorRepository)
type InstructorStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Instructor, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.Instructor, error)
	ListWithTelegram(ctx context.Context) ([]*model.Instructor, error)
}

// RoomStore чтение аудиторий (repository.RoomRepository)
type RoomStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Room, error)
	GetByName(ctx context.Context, name string) (*model.Room, error)
}

// ScheduleStore запись и чтение расписания (repository.ScheduleRepository)
type ScheduleStore interface {
	CreateBatch(ctx context.Context, entries []*model.ScheduleEntry) error
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]model.ScheduleEntry, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// InstructorRegistry регистрация преподавателей (repository.InstructorRepository)
type InstructorRegistry interface {
	Create(ctx context.Context, instructor *model.Instructor) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.Instructor, error)
	LinkTelegram(ctx context.Context, id uuid.UUID, telegramID int64) error
}

// RoomRegistry регистрация аудиторий (repository.RoomRepository)
type RoomRegistry interface {
	Create(ctx context.Context, room *model.Room) error
	GetByName(ctx context.Context, name string) (*model.Room, error)
}
