// Package clock отдаёт текущий момент в гражданском часовом поясе системы.
package clock

import (
	"fmt"
	"sync"
	"time"

	"github.com/Ardenhero/classtrack/internal/model"
)

// Clock источник текущего момента
type Clock interface {
	Now() model.Instant
}

// Civil настоящие часы, привязанные к одной именованной локации
type Civil struct {
	loc *time.Location
	now func() time.Time
}

// NewCivil создаёт часы для локации loc
func NewCivil(loc *time.Location) *Civil {
	return &Civil{loc: loc, now: time.Now}
}

// LoadCivil создаёт часы по имени часового пояса, например "Asia/Manila"
func LoadCivil(name string) (*Civil, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return NewCivil(loc), nil
}

// Now берёт время один раз, день недели и время суток считаются из него
func (c *Civil) Now() model.Instant {
	return model.InstantOf(c.now(), c.loc)
}

// Location возвращает локацию часов
func (c *Civil) Location() *time.Location {
	return c.loc
}

// Manual управляемые часы для тестов и воспроизведения
type Manual struct {
	mu      sync.Mutex
	current time.Time
	loc     *time.Location
}

// NewManual создаёт часы, стоящие на start, в локации start
func NewManual(start time.Time) *Manual {
	return &Manual{current: start, loc: start.Location()}
}

func (m *Manual) Now() model.Instant {
	m.mu.Lock()
	defer m.mu.Unlock()
	return model.InstantOf(m.current, m.loc)
}

// Set переставляет часы на t
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
}

// Advance сдвигает часы вперёд на d и возвращает новое время
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
	return m.current
}
