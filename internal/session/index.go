package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ardenhero/classtrack/internal/model"
)

// Index источник записей расписания. Реализации должны быть безопасны для
// параллельного чтения.
type Index interface {
	// EntriesFor возвращает записи преподавателя на день day, включая записи
	// без дня, по возрастанию начала (при равенстве - по ID).
	// Для неизвестного преподавателя возвращает model.ErrSubjectNotFound.
	EntriesFor(ctx context.Context, subjectID uuid.UUID, day model.Weekday) ([]model.ScheduleEntry, error)
	// HasEntries сообщает, есть ли у преподавателя хоть одна запись в любой день.
	HasEntries(ctx context.Context, subjectID uuid.UUID) (bool, error)
}
