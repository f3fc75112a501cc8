package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry одно регулярное занятие преподавателя
type ScheduleEntry struct {
	ID         int64      `json:"id"`
	SubjectID  uuid.UUID  `json:"instructor_id"`
	ResourceID *uuid.UUID `json:"room_id"` // nil - занятие без аудитории
	Day        Weekday    `json:"day_of_week"`
	Start      TimeOfDay  `json:"start_time"`
	End        TimeOfDay  `json:"end_time"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Validate проверяет запись на границе индекса расписания
func (e *ScheduleEntry) Validate() error {
	if e.SubjectID == uuid.Nil {
		return fmt.Errorf("%w: instructor id is required", ErrInvalidScheduleEntry)
	}
	if !e.Day.IsValid() {
		return fmt.Errorf("%w: day of week %d", ErrInvalidScheduleEntry, int(e.Day))
	}
	if !e.Start.IsValid() || !e.End.IsValid() {
		return fmt.Errorf("%w: time of day out of range", ErrInvalidScheduleEntry)
	}
	if e.Start > e.End {
		return fmt.Errorf("%w: start %s after end %s", ErrInvalidScheduleEntry, e.Start, e.End)
	}
	return nil
}

// HasResource проверяет что занятие проходит в аудитории id
func (e *ScheduleEntry) HasResource(id uuid.UUID) bool {
	return e.ResourceID != nil && *e.ResourceID == id
}
