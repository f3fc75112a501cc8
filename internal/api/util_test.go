package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/clock"
	"github.com/Ardenhero/classtrack/internal/model"
	"github.com/Ardenhero/classtrack/internal/service"
	"github.com/Ardenhero/classtrack/internal/session"
)

// memStore одна структура для всех хранилищ сервисов, расписание пишется в MemoryIndex
type memStore struct {
	mu          sync.Mutex
	instructors map[uuid.UUID]*model.Instructor
	rooms       map[uuid.UUID]*model.Room
	index       *session.MemoryIndex
	entries     []model.ScheduleEntry
	nextID      int64
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*model.Instructor, error) {
	return m.instructors[id], nil
}

func (m *memStore) GetByTelegramID(_ context.Context, telegramID int64) (*model.Instructor, error) {
	for _, i := range m.instructors {
		if i.TelegramID != nil && *i.TelegramID == telegramID {
			return i, nil
		}
	}
	return nil, nil
}

func (m *memStore) Create(_ context.Context, instructor *model.Instructor) error {
	instructor.ID = uuid.New()
	m.instructors[instructor.ID] = instructor
	m.index.AddSubject(instructor.ID)
	return nil
}

func (m *memStore) LinkTelegram(_ context.Context, id uuid.UUID, telegramID int64) error {
	instructor, ok := m.instructors[id]
	if !ok {
		return model.ErrSubjectNotFound
	}
	instructor.TelegramID = &telegramID
	return nil
}

func (m *memStore) ListWithTelegram(context.Context) ([]*model.Instructor, error) {
	return nil, nil
}

type memRooms struct{ *memStore }

func (r memRooms) GetByID(_ context.Context, id uuid.UUID) (*model.Room, error) {
	return r.rooms[id], nil
}

func (r memRooms) GetByName(_ context.Context, name string) (*model.Room, error) {
	for _, room := range r.rooms {
		if strings.EqualFold(room.Name, name) {
			return room, nil
		}
	}
	return nil, nil
}

func (r memRooms) Create(_ context.Context, room *model.Room) error {
	room.ID = uuid.New()
	r.rooms[room.ID] = room
	return nil
}

func (m *memStore) CreateBatch(_ context.Context, entries []*model.ScheduleEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range entries {
		m.nextID++
		e.ID = m.nextID
		if err := m.index.Put(*e); err != nil {
			return err
		}
		m.entries = append(m.entries, *e)
	}
	return nil
}

func (m *memStore) ListBySubject(_ context.Context, id uuid.UUID) ([]model.ScheduleEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.ScheduleEntry
	for _, e := range m.entries {
		if e.SubjectID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) Delete(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			m.index.Remove(id)
			return true, nil
		}
	}
	return false, nil
}

type testEnv struct {
	server  *Server
	store   *memStore
	teacher *model.Instructor
	idle    *model.Instructor
	lab     *model.Room
	hall    *model.Room
}

// newTestEnv сервер с часами на понедельнике 2026-10-19 09:15 UTC
func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	teacher := &model.Instructor{ID: uuid.New(), Name: "Ms. Reyes"}
	idle := &model.Instructor{ID: uuid.New(), Name: "Mr. Cruz"}
	lab := &model.Room{ID: uuid.New(), Name: "Lab 301"}
	hall := &model.Room{ID: uuid.New(), Name: "Hall A"}

	store := &memStore{
		instructors: map[uuid.UUID]*model.Instructor{teacher.ID: teacher, idle.ID: idle},
		rooms:       map[uuid.UUID]*model.Room{lab.ID: lab, hall.ID: hall},
		index:       session.NewMemoryIndex(),
	}
	store.index.AddSubject(teacher.ID)
	store.index.AddSubject(idle.ID)

	logger := zap.NewNop()
	c := clock.NewManual(time.Date(2026, 10, 19, 9, 15, 0, 0, time.UTC))
	gate := session.NewGate(store.index, c, 15)

	server := NewServer(&Options{
		DisableReqLogs: true,
		Sessions:       service.NewSessionService(gate, store, memRooms{store}, logger),
		Schedules:      service.NewScheduleService(store, store, memRooms{store}, logger),
		Directory:      service.NewDirectoryService(store, memRooms{store}, logger),
		Logger:         logger,
	})

	return testEnv{server: server, store: store, teacher: teacher, idle: idle, lab: lab, hall: hall}
}

func (env testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func formatID(id float64) string {
	return strconv.FormatInt(int64(id), 10)
}

var _ http.Handler = (*Server)(nil)
