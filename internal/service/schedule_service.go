package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/model"
)

// ScheduleInput запись расписания в том виде, в каком её присылает клиент
type ScheduleInput struct {
	InstructorID uuid.UUID
	RoomID       *uuid.UUID
	Days         string // "Mon,Wed", "[Monday]", "" = каждый день
	StartTime    string // HH:MM[:SS]
	EndTime      string
}

type ScheduleService struct {
	schedules   ScheduleStore
	instructors InstructorStore
	rooms       RoomStore
	logger      *zap.Logger
}

func NewScheduleService(schedules ScheduleStore, instructors InstructorStore, rooms RoomStore, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		schedules:   schedules,
		instructors: instructors,
		rooms:       rooms,
		logger:      logger,
	}
}

// AddEntries разбирает ввод и создаёт по одной записи на каждый день списка
func (s *ScheduleService) AddEntries(ctx context.Context, in ScheduleInput) ([]*model.ScheduleEntry, error) {
	days, err := model.ParseWeekdays(in.Days)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidScheduleEntry, err)
	}
	start, err := model.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", model.ErrInvalidScheduleEntry, err)
	}
	end, err := model.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %v", model.ErrInvalidScheduleEntry, err)
	}

	instructor, err := s.instructors.GetByID(ctx, in.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("get instructor: %w", err)
	}
	if instructor == nil {
		return nil, model.ErrSubjectNotFound
	}

	if in.RoomID != nil {
		room, err := s.rooms.GetByID(ctx, *in.RoomID)
		if err != nil {
			return nil, fmt.Errorf("get room: %w", err)
		}
		if room == nil {
			return nil, model.ErrRoomNotFound
		}
	}

	entries := make([]*model.ScheduleEntry, 0, len(days))
	for _, day := range days {
		e := &model.ScheduleEntry{
			SubjectID:  in.InstructorID,
			ResourceID: in.RoomID,
			Day:        day,
			Start:      start,
			End:        end,
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := s.schedules.CreateBatch(ctx, entries); err != nil {
		s.logger.Error("Failed to create schedule entries",
			zap.String("instructor_id", in.InstructorID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("create schedule entries: %w", err)
	}

	s.logger.Info("Schedule entries created",
		zap.String("instructor_id", in.InstructorID.String()),
		zap.Int("count", len(entries)),
		zap.String("start", start.String()),
		zap.String("end", end.String()))

	return entries, nil
}

// ListEntries все записи преподавателя
func (s *ScheduleService) ListEntries(ctx context.Context, instructorID uuid.UUID) ([]model.ScheduleEntry, error) {
	instructor, err := s.instructors.GetByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("get instructor: %w", err)
	}
	if instructor == nil {
		return nil, model.ErrSubjectNotFound
	}

	return s.schedules.ListBySubject(ctx, instructorID)
}

// RemoveEntry удаляет запись расписания
func (s *ScheduleService) RemoveEntry(ctx context.Context, id int64) error {
	deleted, err := s.schedules.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete schedule entry: %w", err)
	}
	if !deleted {
		return model.ErrEntryNotFound
	}

	s.logger.Info("Schedule entry removed", zap.Int64("entry_id", id))
	return nil
}
