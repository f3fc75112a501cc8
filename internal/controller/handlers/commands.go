package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/controller/formatting"
	"github.com/Ardenhero/classtrack/internal/model"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID, chatID, ok := sender(update)
	if !ok {
		return
	}
	h.sendMessage(ctx, b, chatID, h.startReply(ctx, telegramID, update.Message.From.FirstName))
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, textHelp)
}

// HandleSession обрабатывает команду /session
func (h *Handlers) HandleSession(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID, chatID, ok := sender(update)
	if !ok {
		return
	}
	h.sendMessage(ctx, b, chatID, h.sessionReply(ctx, telegramID))
}

// HandleRoom обрабатывает команду /room <название>
func (h *Handlers) HandleRoom(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID, chatID, ok := sender(update)
	if !ok {
		return
	}
	h.sendMessage(ctx, b, chatID, h.roomReply(ctx, telegramID, roomArgument(update.Message.Text)))
}

// HandleUnknown отвечает на всё, что не подошло под команды
func (h *Handlers) HandleUnknown(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, textUnknown)
}

func (h *Handlers) startReply(ctx context.Context, telegramID int64, firstName string) string {
	instructor, reply := h.lookupInstructor(ctx, telegramID)
	if instructor == nil {
		return reply
	}

	return fmt.Sprintf(
		"👋 Привет, %s!\n\n"+
			"Ваш аккаунт привязан к преподавателю %s.\n\n"+
			"/session - Текущие занятия\n"+
			"/room <название> - Доступ к аудитории\n"+
			"/help - Справка",
		firstName,
		instructor.Name,
	)
}

func (h *Handlers) sessionReply(ctx context.Context, telegramID int64) string {
	instructor, reply := h.lookupInstructor(ctx, telegramID)
	if instructor == nil {
		return reply
	}

	cl, err := h.sessions.ClassifyNow(ctx, instructor.ID)
	if err != nil {
		h.logger.Error("Failed to classify sessions",
			zap.String("instructor_id", instructor.ID.String()),
			zap.Error(err))
		return textInternalError
	}

	return formatting.FormatClassification(cl, h.sessions.RoomNames(ctx, cl.Candidates))
}

func (h *Handlers) roomReply(ctx context.Context, telegramID int64, roomName string) string {
	if roomName == "" {
		return textRoomUsage
	}

	instructor, reply := h.lookupInstructor(ctx, telegramID)
	if instructor == nil {
		return reply
	}

	room, d, err := h.sessions.AuthorizeRoomByName(ctx, instructor.ID, roomName)
	if errors.Is(err, model.ErrRoomNotFound) {
		return fmt.Sprintf(textRoomNotFound, roomName)
	}
	if err != nil {
		h.logger.Error("Failed to authorize room",
			zap.String("instructor_id", instructor.ID.String()),
			zap.String("room", roomName),
			zap.Error(err))
		return textInternalError
	}

	return formatting.FormatDecision(room.Name, d)
}

// roomArgument название аудитории из "/room Lab 301" или "/room@bot Lab 301"
func roomArgument(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	_, arg, _ := strings.Cut(text, " ")
	return strings.TrimSpace(arg)
}
