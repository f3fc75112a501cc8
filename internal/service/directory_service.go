package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/model"
)

// DirectoryService справочник преподавателей и аудиторий
type DirectoryService struct {
	instructors InstructorRegistry
	rooms       RoomRegistry
	logger      *zap.Logger
}

func NewDirectoryService(instructors InstructorRegistry, rooms RoomRegistry, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{
		instructors: instructors,
		rooms:       rooms,
		logger:      logger,
	}
}

// RegisterInstructor создаёт преподавателя, telegramID можно не указывать
func (s *DirectoryService) RegisterInstructor(ctx context.Context, name string, telegramID *int64) (*model.Instructor, error) {
	if telegramID != nil {
		if err := s.ensureTelegramFree(ctx, uuid.Nil, *telegramID); err != nil {
			return nil, err
		}
	}

	instructor := &model.Instructor{
		Name:       strings.TrimSpace(name),
		TelegramID: telegramID,
	}
	if err := s.instructors.Create(ctx, instructor); err != nil {
		return nil, fmt.Errorf("create instructor: %w", err)
	}

	return instructor, nil
}

// LinkTelegram привязывает Telegram аккаунт к преподавателю.
// Повторная привязка того же аккаунта ничего не меняет.
func (s *DirectoryService) LinkTelegram(ctx context.Context, instructorID uuid.UUID, telegramID int64) error {
	if err := s.ensureTelegramFree(ctx, instructorID, telegramID); err != nil {
		return err
	}

	if err := s.instructors.LinkTelegram(ctx, instructorID, telegramID); err != nil {
		return fmt.Errorf("link telegram: %w", err)
	}
	return nil
}

// RegisterRoom создаёт аудиторию, имена уникальны без учёта регистра
func (s *DirectoryService) RegisterRoom(ctx context.Context, name string) (*model.Room, error) {
	name = strings.TrimSpace(name)

	existing, err := s.rooms.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check existing room: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: room %q", model.ErrAlreadyExists, name)
	}

	room := &model.Room{Name: name}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("Room registered",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name))

	return room, nil
}

func (s *DirectoryService) ensureTelegramFree(ctx context.Context, instructorID uuid.UUID, telegramID int64) error {
	owner, err := s.instructors.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return fmt.Errorf("check telegram owner: %w", err)
	}
	if owner != nil && owner.ID != instructorID {
		return fmt.Errorf("%w: telegram id %d", model.ErrAlreadyExists, telegramID)
	}
	return nil
}
