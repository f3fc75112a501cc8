package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Ardenhero/classtrack/internal/api"
	"github.com/Ardenhero/classtrack/internal/app"
	"github.com/Ardenhero/classtrack/internal/clock"
	"github.com/Ardenhero/classtrack/internal/config"
	"github.com/Ardenhero/classtrack/internal/controller"
	"github.com/Ardenhero/classtrack/internal/repository"
	"github.com/Ardenhero/classtrack/internal/service"
	"github.com/Ardenhero/classtrack/internal/session"
	"github.com/Ardenhero/classtrack/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("ClassTrack stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting ClassTrack",
		zap.String("environment", cfg.Environment),
		zap.String("timezone", cfg.Timezone),
		zap.Int("prep_lead_minutes", cfg.PrepLeadMinutes),
		zap.Bool("bot_enabled", cfg.BotEnabled()))

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("✅ Connected to database")

	if cfg.AutoMigrate {
		migrator, err := app.NewMigrator(pool, migrations.FS, logger)
		if err != nil {
			return err
		}
		err = migrator.Run(ctx)
		migrator.Close()
		if err != nil {
			return err
		}
	}

	civil, err := clock.LoadCivil(cfg.Timezone)
	if err != nil {
		return err
	}

	// Репозитории
	scheduleRepo := repository.NewScheduleRepository(pool, logger)
	instructorRepo := repository.NewInstructorRepository(pool, logger)
	roomRepo := repository.NewRoomRepository(pool)

	// Сервисы
	gate := session.NewGate(scheduleRepo, civil, cfg.PrepLeadMinutes)
	sessionService := service.NewSessionService(gate, instructorRepo, roomRepo, logger)
	scheduleService := service.NewScheduleService(scheduleRepo, instructorRepo, roomRepo, logger)
	directoryService := service.NewDirectoryService(instructorRepo, roomRepo, logger)

	server := api.NewServer(&api.Options{
		Address:   cfg.HTTPAddr,
		Debug:     !cfg.IsProduction(),
		Sessions:  sessionService,
		Schedules: scheduleService,
		Directory: directoryService,
		Logger:    logger,
	})

	if cfg.BotEnabled() {
		bot, err := controller.NewBotController(cfg.TelegramToken, sessionService, logger)
		if err != nil {
			return err
		}
		if err := bot.RegisterHandlers(ctx); err != nil {
			return err
		}
		go bot.Start(ctx)

		reminder := app.NewReminder(instructorRepo, sessionService, bot.Notifier(), cfg.ReminderInterval, logger)
		reminder.Start(ctx)
		defer reminder.Stop()
	} else {
		logger.Warn("TELEGRAM_TOKEN is empty, bot and reminders are disabled")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Stop(shutdownCtx)
}
