package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Ardenhero/classtrack/internal/model"
)

type fakeInstructors struct {
	byID map[uuid.UUID]*model.Instructor
}

func newFakeInstructors(list ...*model.Instructor) *fakeInstructors {
	f := &fakeInstructors{byID: make(map[uuid.UUID]*model.Instructor)}
	for _, i := range list {
		f.byID[i.ID] = i
	}
	return f
}

func (f *fakeInstructors) GetByID(_ context.Context, id uuid.UUID) (*model.Instructor, error) {
	return f.byID[id], nil
}

func (f *fakeInstructors) GetByTelegramID(_ context.Context, telegramID int64) (*model.Instructor, error) {
	for _, i := range f.byID {
		if i.TelegramID != nil && *i.TelegramID == telegramID {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeInstructors) ListWithTelegram(_ context.Context) ([]*model.Instructor, error) {
	var out []*model.Instructor
	for _, i := range f.byID {
		if i.TelegramID != nil {
			out = append(out, i)
		}
	}
	return out, nil
}

type fakeRooms struct {
	byID      map[uuid.UUID]*model.Room
	err       error
	createErr error
}

func newFakeRooms(list ...*model.Room) *fakeRooms {
	f := &fakeRooms{byID: make(map[uuid.UUID]*model.Room)}
	for _, r := range list {
		f.byID[r.ID] = r
	}
	return f
}

func (f *fakeRooms) GetByID(_ context.Context, id uuid.UUID) (*model.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeRooms) GetByName(_ context.Context, name string) (*model.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.byID {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return nil, nil
}

type fakeSchedules struct {
	created []*model.ScheduleEntry
	fail    bool
}

func (f *fakeSchedules) CreateBatch(_ context.Context, entries []*model.ScheduleEntry) error {
	if f.fail {
		return errors.New("db down")
	}
	for _, e := range entries {
		e.ID = int64(len(f.created) + 1)
		f.created = append(f.created, e)
	}
	return nil
}

func (f *fakeSchedules) ListBySubject(_ context.Context, subjectID uuid.UUID) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range f.created {
		if e.SubjectID == subjectID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeSchedules) Delete(_ context.Context, id int64) (bool, error) {
	if f.fail {
		return false, errors.New("db down")
	}
	for i, e := range f.created {
		if e.ID == id {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInstructors) Create(_ context.Context, instructor *model.Instructor) error {
	instructor.ID = uuid.New()
	f.byID[instructor.ID] = instructor
	return nil
}

func (f *fakeInstructors) LinkTelegram(_ context.Context, id uuid.UUID, telegramID int64) error {
	instructor, ok := f.byID[id]
	if !ok {
		return model.ErrSubjectNotFound
	}
	instructor.TelegramID = &telegramID
	return nil
}

func (f *fakeRooms) Create(_ context.Context, room *model.Room) error {
	if f.err != nil {
		return f.err
	}
	if f.createErr != nil {
		return f.createErr
	}
	room.ID = uuid.New()
	f.byID[room.ID] = room
	return nil
}
