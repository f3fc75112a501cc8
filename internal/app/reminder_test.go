package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/clock"
	"github.com/Ardenhero/classtrack/internal/model"
	"github.com/Ardenhero/classtrack/internal/session"
)

type fakeLister struct {
	instructors []*model.Instructor
}

func (f *fakeLister) ListWithTelegram(context.Context) ([]*model.Instructor, error) {
	return f.instructors, nil
}

type gateClassifier struct {
	gate *session.Gate
}

func (g gateClassifier) ClassifyNow(ctx context.Context, id uuid.UUID) (session.Classification, error) {
	return g.gate.ClassifyNow(ctx, id)
}

func (g gateClassifier) RoomNames(context.Context, []session.Candidate) map[uuid.UUID]string {
	return map[uuid.UUID]string{}
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages map[int64][]string
	fail     bool
}

func (n *recordingNotifier) Notify(_ context.Context, chatID int64, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("telegram unavailable")
	}
	if n.messages == nil {
		n.messages = make(map[int64][]string)
	}
	n.messages[chatID] = append(n.messages[chatID], text)
	return nil
}

type reminderFixture struct {
	reminder *Reminder
	notifier *recordingNotifier
	clock    *clock.Manual
}

func newReminderFixture(t *testing.T) reminderFixture {
	t.Helper()

	tg := int64(555)
	linked := &model.Instructor{ID: uuid.New(), Name: "Ms. Reyes", TelegramID: &tg}
	unlinked := &model.Instructor{ID: uuid.New(), Name: "Mr. Cruz"}

	idx := session.NewMemoryIndex()
	require.NoError(t, idx.Put(
		model.ScheduleEntry{SubjectID: linked.ID, Day: model.WeekdayUnset, Start: model.NewTimeOfDay(9, 0, 0), End: model.NewTimeOfDay(10, 0, 0)},
		model.ScheduleEntry{SubjectID: unlinked.ID, Day: model.WeekdayUnset, Start: model.NewTimeOfDay(9, 0, 0), End: model.NewTimeOfDay(10, 0, 0)},
	))

	c := clock.NewManual(time.Date(2026, 10, 19, 8, 40, 0, 0, time.UTC))
	notifier := &recordingNotifier{}
	r := NewReminder(
		&fakeLister{instructors: []*model.Instructor{linked, unlinked}},
		gateClassifier{gate: session.NewGate(idx, c, 15)},
		notifier,
		time.Minute,
		zap.NewNop(),
	)

	return reminderFixture{reminder: r, notifier: notifier, clock: c}
}

func TestReminderSendsOncePerEntryPerDay(t *testing.T) {
	f := newReminderFixture(t)
	ctx := context.Background()

	// 08:40 - ещё рано
	assert.Equal(t, 0, f.reminder.Tick(ctx))

	// 08:45 - окно подготовки
	f.clock.Advance(5 * time.Minute)
	assert.Equal(t, 1, f.reminder.Tick(ctx))

	// 08:50 - уже напомнили
	f.clock.Advance(5 * time.Minute)
	assert.Equal(t, 0, f.reminder.Tick(ctx))

	// следующий день, 08:50 - напоминаем снова
	f.clock.Advance(24 * time.Hour)
	assert.Equal(t, 1, f.reminder.Tick(ctx))

	require.Len(t, f.notifier.messages[555], 2)
	assert.Contains(t, f.notifier.messages[555][0], "09:00-10:00")
}

func TestReminderRetriesAfterFailure(t *testing.T) {
	f := newReminderFixture(t)
	ctx := context.Background()
	f.clock.Advance(10 * time.Minute)

	f.notifier.fail = true
	assert.Equal(t, 0, f.reminder.Tick(ctx))

	f.notifier.fail = false
	assert.Equal(t, 1, f.reminder.Tick(ctx))
}

func TestReminderSkipsActiveSessions(t *testing.T) {
	f := newReminderFixture(t)
	f.clock.Advance(30 * time.Minute) // 09:10

	assert.Equal(t, 0, f.reminder.Tick(context.Background()))
}

func TestReminderStop(t *testing.T) {
	f := newReminderFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.reminder.Start(ctx)
	f.reminder.Stop()
	f.reminder.Stop()
}
