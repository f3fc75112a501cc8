package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/model"
	"github.com/Ardenhero/classtrack/internal/repository/base"
)

const instructorColumns = `id, name, telegram_id, created_at`

type InstructorRepository struct {
	*base.Repository
	logger *zap.Logger
}

func NewInstructorRepository(pool *pgxpool.Pool, logger *zap.Logger) *InstructorRepository {
	return &InstructorRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// Create создаёт преподавателя
func (r *InstructorRepository) Create(ctx context.Context, instructor *model.Instructor) error {
	query := `
		INSERT INTO instructors (name, telegram_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.QueryRow(ctx, query, instructor.Name, instructor.TelegramID).
		Scan(&instructor.ID, &instructor.CreatedAt)
	if base.IsUniqueViolation(err) {
		return fmt.Errorf("create instructor: %w: telegram id", model.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("create instructor: %w", err)
	}

	r.logger.Info("Instructor created",
		zap.String("instructor_id", instructor.ID.String()),
		zap.String("name", instructor.Name))

	return nil
}

// GetByID получает преподавателя по ID
func (r *InstructorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM instructors WHERE id = $1`

	var instructor model.Instructor
	err := r.QueryRow(ctx, query, id).Scan(
		&instructor.ID,
		&instructor.Name,
		&instructor.TelegramID,
		&instructor.CreatedAt,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get instructor by id: %w", err)
	}

	return &instructor, nil
}

// GetByTelegramID получает преподавателя по Telegram ID
func (r *InstructorRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM instructors WHERE telegram_id = $1`

	var instructor model.Instructor
	err := r.QueryRow(ctx, query, telegramID).Scan(
		&instructor.ID,
		&instructor.Name,
		&instructor.TelegramID,
		&instructor.CreatedAt,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get instructor by telegram id: %w", err)
	}

	return &instructor, nil
}

// ListWithTelegram получает преподавателей с привязанным Telegram
func (r *InstructorRepository) ListWithTelegram(ctx context.Context) ([]*model.Instructor, error) {
	query := `
		SELECT ` + instructorColumns + `
		FROM instructors
		WHERE telegram_id IS NOT NULL
		ORDER BY name
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list instructors with telegram: %w", err)
	}
	defer rows.Close()

	var instructors []*model.Instructor
	for rows.Next() {
		instructor := &model.Instructor{}
		err := rows.Scan(
			&instructor.ID,
			&instructor.Name,
			&instructor.TelegramID,
			&instructor.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan instructor: %w", err)
		}
		instructors = append(instructors, instructor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate instructors: %w", err)
	}

	return instructors, nil
}

// LinkTelegram привязывает Telegram к преподавателю
func (r *InstructorRepository) LinkTelegram(ctx context.Context, id uuid.UUID, telegramID int64) error {
	affected, err := r.ExecAffected(ctx, `UPDATE instructors SET telegram_id = $2 WHERE id = $1`, id, telegramID)
	if base.IsUniqueViolation(err) {
		return fmt.Errorf("link telegram: %w: telegram id %d", model.ErrAlreadyExists, telegramID)
	}
	if err != nil {
		return fmt.Errorf("link telegram: %w", err)
	}
	if affected == 0 {
		return model.ErrSubjectNotFound
	}

	r.logger.Info("Telegram linked",
		zap.String("instructor_id", id.String()),
		zap.Int64("telegram_id", telegramID))

	return nil
}
