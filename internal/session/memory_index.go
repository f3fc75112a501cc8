package session

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Ardenhero/classtrack/internal/model"
)

// MemoryIndex индекс расписания в памяти
type MemoryIndex struct {
	mu       sync.RWMutex
	subjects map[uuid.UUID][]model.ScheduleEntry
	nextID   int64
}

// NewMemoryIndex создаёт пустой индекс
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		subjects: make(map[uuid.UUID][]model.ScheduleEntry),
	}
}

// AddSubject регистрирует преподавателя без записей
func (m *MemoryIndex) AddSubject(subjectID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.subjects[subjectID]; !ok {
		m.subjects[subjectID] = nil
	}
}

// Put проверяет и добавляет записи. Преподаватель регистрируется автоматически.
// Записи без ID получают следующий свободный ID.
func (m *MemoryIndex) Put(entries ...model.ScheduleEntry) error {
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return fmt.Errorf("put schedule entry: %w", err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// явные ID не должны повторяться ни в индексе, ни внутри пачки
	batch := make(map[int64]bool, len(entries))
	for _, e := range entries {
		if e.ID == 0 {
			continue
		}
		if batch[e.ID] || m.hasID(e.ID) {
			return fmt.Errorf("put schedule entry: %w: duplicate id %d", model.ErrInvalidScheduleEntry, e.ID)
		}
		batch[e.ID] = true
	}

	for _, e := range entries {
		if e.ID == 0 {
			m.nextID++
			e.ID = m.nextID
		} else if e.ID > m.nextID {
			m.nextID = e.ID
		}
		m.subjects[e.SubjectID] = append(m.subjects[e.SubjectID], e)
	}

	return nil
}

// hasID вызывается под m.mu
func (m *MemoryIndex) hasID(id int64) bool {
	for _, entries := range m.subjects {
		for _, e := range entries {
			if e.ID == id {
				return true
			}
		}
	}
	return false
}

func (m *MemoryIndex) EntriesFor(_ context.Context, subjectID uuid.UUID, day model.Weekday) ([]model.ScheduleEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all, ok := m.subjects[subjectID]
	if !ok {
		return nil, model.ErrSubjectNotFound
	}

	var entries []model.ScheduleEntry
	for _, e := range all {
		if e.Day.Matches(day) {
			entries = append(entries, e)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Start != entries[j].Start {
			return entries[i].Start < entries[j].Start
		}
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}

func (m *MemoryIndex) HasEntries(_ context.Context, subjectID uuid.UUID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.subjects[subjectID]) > 0, nil
}

// Remove удаляет запись по ID, false если записи нет.
// Преподаватель остаётся в индексе даже без записей.
func (m *MemoryIndex) Remove(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for subjectID, entries := range m.subjects {
		for i, e := range entries {
			if e.ID != id {
				continue
			}
			m.subjects[subjectID] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}
	return false
}
