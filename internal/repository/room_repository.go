package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ardenhero/classtrack/internal/model"
	"github.com/Ardenhero/classtrack/internal/repository/base"
)

type RoomRepository struct {
	*base.Repository
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{Repository: base.NewRepository(pool)}
}

// Create создаёт аудиторию
func (r *RoomRepository) Create(ctx context.Context, room *model.Room) error {
	err := r.QueryRow(ctx, `INSERT INTO rooms (name) VALUES ($1) RETURNING id, created_at`, room.Name).
		Scan(&room.ID, &room.CreatedAt)
	if base.IsUniqueViolation(err) {
		return fmt.Errorf("create room: %w: room %q", model.ErrAlreadyExists, room.Name)
	}
	if err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

// GetByID получает аудиторию по ID
func (r *RoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	var room model.Room
	err := r.QueryRow(ctx, `SELECT id, name, created_at FROM rooms WHERE id = $1`, id).
		Scan(&room.ID, &room.Name, &room.CreatedAt)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room by id: %w", err)
	}
	return &room, nil
}

// GetByName получает аудиторию по названию без учёта регистра
func (r *RoomRepository) GetByName(ctx context.Context, name string) (*model.Room, error) {
	var room model.Room
	err := r.QueryRow(ctx, `SELECT id, name, created_at FROM rooms WHERE lower(name) = lower($1)`, name).
		Scan(&room.ID, &room.Name, &room.CreatedAt)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room by name: %w", err)
	}
	return &room, nil
}
