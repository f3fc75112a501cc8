package handlers

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/model"
	"github.com/Ardenhero/classtrack/internal/session"
)

// Sessions то, что обработчикам нужно от service.SessionService
type Sessions interface {
	InstructorByTelegram(ctx context.Context, telegramID int64) (*model.Instructor, error)
	ClassifyNow(ctx context.Context, instructorID uuid.UUID) (session.Classification, error)
	AuthorizeRoomByName(ctx context.Context, instructorID uuid.UUID, roomName string) (*model.Room, session.Decision, error)
	RoomNames(ctx context.Context, candidates []session.Candidate) map[uuid.UUID]string
}

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	sessions Sessions
	logger   *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(sessions Sessions, logger *zap.Logger) *Handlers {
	return &Handlers{
		sessions: sessions,
		logger:   logger,
	}
}
