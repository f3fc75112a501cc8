package app

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/controller/formatting"
	"github.com/Ardenhero/classtrack/internal/model"
	"github.com/Ardenhero/classtrack/internal/session"
)

// Notifier отправляет сообщение в чат
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

// InstructorLister преподаватели с привязанным Telegram
type InstructorLister interface {
	ListWithTelegram(ctx context.Context) ([]*model.Instructor, error)
}

// SessionClassifier текущие занятия преподавателя
type SessionClassifier interface {
	ClassifyNow(ctx context.Context, instructorID uuid.UUID) (session.Classification, error)
	RoomNames(ctx context.Context, candidates []session.Candidate) map[uuid.UUID]string
}

// Reminder периодически проверяет занятия и один раз за день напоминает
// преподавателю о каждом занятии, вошедшем в окно подготовки
type Reminder struct {
	instructors InstructorLister
	sessions    SessionClassifier
	notifier    Notifier
	interval    time.Duration
	logger      *zap.Logger

	mu   sync.Mutex
	date string
	sent map[string]bool

	stopOnce sync.Once
	stopChan chan struct{}
}

// NewReminder создаёт фоновую задачу напоминаний
func NewReminder(instructors InstructorLister, sessions SessionClassifier, notifier Notifier, interval time.Duration, logger *zap.Logger) *Reminder {
	return &Reminder{
		instructors: instructors,
		sessions:    sessions,
		notifier:    notifier,
		interval:    interval,
		logger:      logger,
		sent:        make(map[string]bool),
		stopChan:    make(chan struct{}),
	}
}

// Start запускает задачу в отдельной горутине
func (r *Reminder) Start(ctx context.Context) {
	r.logger.Info("Starting prep reminder", zap.Duration("interval", r.interval))
	go r.run(ctx)
}

// Stop останавливает задачу
func (r *Reminder) Stop() {
	r.stopOnce.Do(func() {
		r.logger.Info("Stopping prep reminder")
		close(r.stopChan)
	})
}

func (r *Reminder) run(ctx context.Context) {
	// Первый запуск сразу при старте
	r.Tick(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Tick(ctx)
		case <-r.stopChan:
			r.logger.Info("Prep reminder stopped")
			return
		case <-ctx.Done():
			r.logger.Info("Prep reminder cancelled")
			return
		}
	}
}

// Tick один проход по преподавателям. Возвращает число отправленных напоминаний.
func (r *Reminder) Tick(ctx context.Context) int {
	instructors, err := r.instructors.ListWithTelegram(ctx)
	if err != nil {
		r.logger.Error("Failed to list instructors", zap.Error(err))
		return 0
	}

	sent := 0
	for _, instructor := range instructors {
		if instructor.TelegramID == nil {
			continue
		}
		sent += r.remind(ctx, instructor)
	}

	if sent > 0 {
		r.logger.Info("Prep reminders sent", zap.Int("count", sent))
	}
	return sent
}

func (r *Reminder) remind(ctx context.Context, instructor *model.Instructor) int {
	cl, err := r.sessions.ClassifyNow(ctx, instructor.ID)
	if err != nil {
		r.logger.Warn("Failed to classify sessions for reminder",
			zap.String("instructor_id", instructor.ID.String()),
			zap.Error(err))
		return 0
	}

	var names map[uuid.UUID]string
	sent := 0
	for _, c := range cl.Candidates {
		if c.State != session.StatePrep {
			continue
		}

		key := strconv.FormatInt(c.Entry.ID, 10)
		if !r.claim(cl.Instant.Date(), key) {
			continue
		}

		if names == nil {
			names = r.sessions.RoomNames(ctx, cl.Candidates)
		}

		err := r.notifier.Notify(ctx, *instructor.TelegramID, formatting.FormatPrepReminder(c, names))
		if err != nil {
			r.logger.Error("Failed to send prep reminder",
				zap.String("instructor_id", instructor.ID.String()),
				zap.Int64("entry_id", c.Entry.ID),
				zap.Error(err))
			r.release(key)
			continue
		}
		sent++
	}

	return sent
}

// claim отмечает запись как напомненную на дату date. Смена даты сбрасывает отметки.
func (r *Reminder) claim(date, key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.date != date {
		r.date = date
		r.sent = make(map[string]bool)
	}
	if r.sent[key] {
		return false
	}
	r.sent[key] = true
	return true
}

func (r *Reminder) release(key string) {
	r.mu.Lock()
	delete(r.sent, key)
	r.mu.Unlock()
}
