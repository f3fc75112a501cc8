package controller

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// messageSender часть *bot.Bot, которой пользуется BotNotifier
type messageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// BotNotifier реализует app.Notifier поверх Telegram
type BotNotifier struct {
	sender messageSender
}

func NewBotNotifier(sender messageSender) *BotNotifier {
	return &BotNotifier{sender: sender}
}

func (n *BotNotifier) Notify(ctx context.Context, chatID int64, text string) error {
	if _, err := n.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
