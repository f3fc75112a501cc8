// Package controller Telegram бот для преподавателей
package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/controller/handlers"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

// NewBotController создаёт бота, неизвестные сообщения уходят в HandleUnknown
func NewBotController(token string, sessions handlers.Sessions, logger *zap.Logger) (*BotController, error) {
	cmdHandlers := handlers.NewHandlers(sessions, logger)

	b, err := bot.New(token, bot.WithDefaultHandler(cmdHandlers.HandleUnknown))
	if err != nil {
		return nil, err
	}

	return &BotController{
		bot:      b,
		handlers: cmdHandlers,
		logger:   logger,
	}, nil
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// совпадение по первому слову: работает "/session@bot" в группах и "/room <название>"
	c.bot.RegisterHandlerMatchFunc(handlers.MatchCommand("start"), c.handlers.HandleStart)
	c.bot.RegisterHandlerMatchFunc(handlers.MatchCommand("help"), c.handlers.HandleHelp)
	c.bot.RegisterHandlerMatchFunc(handlers.MatchCommand("session"), c.handlers.HandleSession)
	c.bot.RegisterHandlerMatchFunc(handlers.MatchCommand("room"), c.handlers.HandleRoom)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Статус привязки"},
		{Command: "session", Description: "🗓 Текущие занятия"},
		{Command: "room", Description: "🚪 Доступ к аудитории"},
		{Command: "help", Description: "❓ Справка по командам"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Notifier отправка напоминаний через этого бота
func (c *BotController) Notifier() *BotNotifier {
	return NewBotNotifier(c.bot)
}

// Start запускает бота, блокирует до отмены ctx
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
}
