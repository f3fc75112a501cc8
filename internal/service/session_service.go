package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/model"
	"github.com/Ardenhero/classtrack/internal/session"
)

// Коды сообщений для клиентов
const (
	MessageNoClasses         = "no_classes"
	MessageNoActiveSession   = "no_active_session"
	MessageNotAuthorizedRoom = "not_authorized_for_this_room"
	MessageAuthorized        = "authorized"
)

// ReasonMessage переводит причину решения в код сообщения для клиента
func ReasonMessage(reason session.Reason) string {
	switch reason {
	case session.ReasonNoEntries:
		return MessageNoClasses
	case session.ReasonNoCandidates:
		return MessageNoActiveSession
	case session.ReasonResourceMismatch:
		return MessageNotAuthorizedRoom
	default:
		return MessageAuthorized
	}
}

type SessionService struct {
	gate        *session.Gate
	instructors InstructorStore
	rooms       RoomStore
	logger      *zap.Logger
}

func NewSessionService(gate *session.Gate, instructors InstructorStore, rooms RoomStore, logger *zap.Logger) *SessionService {
	return &SessionService{
		gate:        gate,
		instructors: instructors,
		rooms:       rooms,
		logger:      logger,
	}
}

// ClassifyNow текущие и ближайшие занятия преподавателя
func (s *SessionService) ClassifyNow(ctx context.Context, instructorID uuid.UUID) (session.Classification, error) {
	cl, err := s.gate.ClassifyNow(ctx, instructorID)
	if err != nil {
		s.logger.Error("Failed to classify sessions",
			zap.String("instructor_id", instructorID.String()),
			zap.Error(err))
		return session.Classification{}, err
	}

	s.logger.Debug("Sessions classified",
		zap.String("instructor_id", instructorID.String()),
		zap.Int("candidates", len(cl.Candidates)))

	return cl, nil
}

// Authorize решение по аудитории roomID (nil - без аудитории)
func (s *SessionService) Authorize(ctx context.Context, instructorID uuid.UUID, roomID *uuid.UUID) (session.Decision, error) {
	fields := []zap.Field{zap.String("instructor_id", instructorID.String())}
	if roomID != nil {
		fields = append(fields, zap.String("room_id", roomID.String()))
	}

	d, err := s.gate.Authorize(ctx, instructorID, roomID)
	if err != nil {
		s.logger.Error("Failed to authorize", append(fields, zap.Error(err))...)
		return session.Decision{}, err
	}

	s.logger.Debug("Authorization decided", append(fields,
		zap.Bool("authorized", d.Authorized),
		zap.String("reason", string(d.Reason)),
		zap.Int("candidates", len(d.Candidates)))...)

	return d, nil
}

// AuthorizeRoomByName то же, что Authorize, но аудитория задаётся названием
func (s *SessionService) AuthorizeRoomByName(ctx context.Context, instructorID uuid.UUID, roomName string) (*model.Room, session.Decision, error) {
	roomName = strings.TrimSpace(roomName)

	room, err := s.rooms.GetByName(ctx, roomName)
	if err != nil {
		return nil, session.Decision{}, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, session.Decision{}, fmt.Errorf("%w: %q", model.ErrRoomNotFound, roomName)
	}

	d, err := s.Authorize(ctx, instructorID, &room.ID)
	if err != nil {
		return nil, session.Decision{}, err
	}

	return room, d, nil
}

// InstructorByTelegram находит преподавателя по Telegram ID, nil если не привязан
func (s *SessionService) InstructorByTelegram(ctx context.Context, telegramID int64) (*model.Instructor, error) {
	return s.instructors.GetByTelegramID(ctx, telegramID)
}

// RoomNames названия аудиторий кандидатов для вывода пользователю
func (s *SessionService) RoomNames(ctx context.Context, candidates []session.Candidate) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	for _, c := range candidates {
		if c.Entry.ResourceID == nil {
			continue
		}
		id := *c.Entry.ResourceID
		if _, ok := names[id]; ok {
			continue
		}

		room, err := s.rooms.GetByID(ctx, id)
		if err != nil {
			s.logger.Warn("Failed to resolve room name",
				zap.String("room_id", id.String()),
				zap.Error(err))
			continue
		}
		if room != nil {
			names[id] = room.Name
		}
	}
	return names
}
