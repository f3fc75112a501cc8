package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/model"
)

// lookupInstructor ищет преподавателя по Telegram ID
// Возвращает преподавателя и пустой текст если OK, иначе nil и текст ответа
func (h *Handlers) lookupInstructor(ctx context.Context, telegramID int64) (*model.Instructor, string) {
	instructor, err := h.sessions.InstructorByTelegram(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to get instructor", zap.Int64("telegram_id", telegramID), zap.Error(err))
		return nil, textInternalError
	}

	if instructor == nil {
		return nil, fmt.Sprintf(textNotLinked, telegramID)
	}

	return instructor, ""
}

// sender ID отправителя и чата, false для сообщений без отправителя
func sender(update *models.Update) (telegramID, chatID int64, ok bool) {
	if update.Message == nil || update.Message.From == nil {
		return 0, 0, false
	}
	return update.Message.From.ID, update.Message.Chat.ID, true
}

// sendMessage отправляет сообщение и логирует если не удалось
func (h *Handlers) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// MatchCommand совпадает с сообщением, первое слово которого команда name
// ("/room Lab 301", "/session@classtrack_bot"), но не "/roomy"
func MatchCommand(name string) bot.MatchFunc {
	return func(update *models.Update) bool {
		if update.Message == nil {
			return false
		}
		return commandName(update.Message.Text) == name
	}
}

// commandName команда без "/" и суффикса "@bot", пустая строка если это не команда
func commandName(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	token, _, _ := strings.Cut(text, " ")
	token, _, _ = strings.Cut(token, "@")
	return strings.ToLower(strings.TrimPrefix(token, "/"))
}
