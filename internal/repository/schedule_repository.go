package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/model"
	"github.com/Ardenhero/classtrack/internal/repository/base"
)

const scheduleColumns = `e.id, e.instructor_id, e.room_id, e.day_of_week, e.start_time, e.end_time, e.created_at`

// ScheduleRepository индекс расписания в Postgres
type ScheduleRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewScheduleRepository создаёт новый репозиторий
func NewScheduleRepository(pool *pgxpool.Pool, logger *zap.Logger) *ScheduleRepository {
	return &ScheduleRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// EntriesFor получает записи преподавателя на день day одним запросом.
// LEFT JOIN отличает неизвестного преподавателя (нет строк) от преподавателя
// без занятий (одна строка с NULL вместо записи).
func (r *ScheduleRepository) EntriesFor(ctx context.Context, subjectID uuid.UUID, day model.Weekday) ([]model.ScheduleEntry, error) {
	query := `
		SELECT i.id, ` + scheduleColumns + `
		FROM instructors i
		LEFT JOIN schedule_entries e
			ON e.instructor_id = i.id AND (e.day_of_week = $2 OR e.day_of_week IS NULL)
		WHERE i.id = $1
		ORDER BY e.start_time, e.id
	`

	rows, err := r.Query(ctx, query, subjectID, int16(day))
	if err != nil {
		return nil, fmt.Errorf("get schedule entries for day: %w", err)
	}
	defer rows.Close()

	found := false
	entries := make([]model.ScheduleEntry, 0)
	for rows.Next() {
		found = true

		var (
			instructorID uuid.UUID
			row          nullableEntryRow
		)
		err := rows.Scan(
			&instructorID,
			&row.id,
			&row.instructorID,
			&row.roomID,
			&row.day,
			&row.start,
			&row.end,
			&row.createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}

		if row.id == nil {
			continue
		}
		entries = append(entries, row.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule entries: %w", err)
	}

	if !found {
		return nil, model.ErrSubjectNotFound
	}

	return entries, nil
}

// HasEntries проверяет есть ли у преподавателя хоть одна запись
func (r *ScheduleRepository) HasEntries(ctx context.Context, subjectID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM schedule_entries WHERE instructor_id = $1)`

	var exists bool
	if err := r.QueryRow(ctx, query, subjectID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check schedule entries: %w", err)
	}

	return exists, nil
}

// Create проверяет и сохраняет одну запись
func (r *ScheduleRepository) Create(ctx context.Context, entry *model.ScheduleEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if err := insertEntry(ctx, r.Pool(), entry); err != nil {
		r.logger.Error("Failed to insert schedule entry",
			zap.String("instructor_id", entry.SubjectID.String()),
			zap.Error(err))
		return err
	}

	return nil
}

// CreateBatch сохраняет записи в одной транзакции: либо все, либо ни одной
func (r *ScheduleRepository) CreateBatch(ctx context.Context, entries []*model.ScheduleEntry) error {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}

	return r.InTx(ctx, func(tx pgx.Tx) error {
		for _, e := range entries {
			if err := insertEntry(ctx, tx, e); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListBySubject получает все записи преподавателя
func (r *ScheduleRepository) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]model.ScheduleEntry, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedule_entries e
		WHERE e.instructor_id = $1
		ORDER BY e.day_of_week NULLS FIRST, e.start_time, e.id
	`

	rows, err := r.Query(ctx, query, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.ScheduleEntry, 0)
	for rows.Next() {
		var row nullableEntryRow
		err := rows.Scan(&row.id, &row.instructorID, &row.roomID, &row.day, &row.start, &row.end, &row.createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}
		entries = append(entries, row.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule entries: %w", err)
	}

	return entries, nil
}

// Delete удаляет запись, возвращает false если её не было
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.ExecAffected(ctx, `DELETE FROM schedule_entries WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete schedule entry: %w", err)
	}
	return affected > 0, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertEntry(ctx context.Context, q queryRower, entry *model.ScheduleEntry) error {
	query := `
		INSERT INTO schedule_entries (instructor_id, room_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(
		ctx,
		query,
		entry.SubjectID,
		entry.ResourceID,
		dayParam(entry.Day),
		timeParam(entry.Start),
		timeParam(entry.End),
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("create schedule entry: %w", err)
	}

	return nil
}

// nullableEntryRow строка LEFT JOIN, где все поля записи могут быть NULL
type nullableEntryRow struct {
	id           *int64
	instructorID *uuid.UUID
	roomID       *uuid.UUID
	day          *int16
	start        pgtype.Time
	end          pgtype.Time
	createdAt    pgtype.Timestamptz
}

func (row nullableEntryRow) toModel() model.ScheduleEntry {
	e := model.ScheduleEntry{
		ResourceID: row.roomID,
		Start:      timeOfDay(row.start),
		End:        timeOfDay(row.end),
		CreatedAt:  row.createdAt.Time,
	}
	if row.id != nil {
		e.ID = *row.id
	}
	if row.instructorID != nil {
		e.SubjectID = *row.instructorID
	}
	if row.day != nil {
		e.Day = model.Weekday(*row.day)
	}
	return e
}

func dayParam(d model.Weekday) *int16 {
	if d.IsUnset() {
		return nil
	}
	v := int16(d)
	return &v
}

func timeParam(t model.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t) * 1_000_000, Valid: true}
}

func timeOfDay(t pgtype.Time) model.TimeOfDay {
	if !t.Valid {
		return 0
	}
	return model.TimeOfDay(t.Microseconds / 1_000_000)
}
