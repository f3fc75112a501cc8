package model

import (
	"time"

	"github.com/google/uuid"
)

// Instructor преподаватель, чьё расписание проверяется
type Instructor struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	TelegramID *int64    `json:"telegram_id"` // nil - Telegram не привязан
	CreatedAt  time.Time `json:"created_at"`
}

// Room аудитория, которой может управлять преподаватель
type Room struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
