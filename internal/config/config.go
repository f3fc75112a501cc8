package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvironment      = "development"
	defaultHTTPAddr         = ":8080"
	defaultTimezone         = "Asia/Manila"
	defaultPrepLeadMinutes  = 15
	maxPrepLeadMinutes      = 180
	defaultReminderInterval = time.Minute
)

type Config struct {
	DBDSN            string
	Environment      string
	HTTPAddr         string
	TelegramToken    string
	Timezone         string
	PrepLeadMinutes  int
	ReminderInterval time.Duration
	AutoMigrate      bool
}

// Load читает конфигурацию из .env (если есть) и переменных окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv(os.Getenv)
}

// FromEnv собирает конфигурацию через getenv. Все ошибки значений
// собираются и возвращаются вместе.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBDSN:            strings.TrimSpace(getenv("DB_DSN")),
		Environment:      strings.TrimSpace(getenv("ENV")),
		HTTPAddr:         strings.TrimSpace(getenv("HTTP_ADDR")),
		TelegramToken:    strings.TrimSpace(getenv("TELEGRAM_TOKEN")),
		Timezone:         strings.TrimSpace(getenv("TIMEZONE")),
		PrepLeadMinutes:  defaultPrepLeadMinutes,
		ReminderInterval: defaultReminderInterval,
		AutoMigrate:      true,
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironment
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}
	if cfg.Timezone == "" {
		cfg.Timezone = defaultTimezone
	}

	var invalid []string

	if v := strings.TrimSpace(getenv("PREP_LEAD_MINUTES")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxPrepLeadMinutes {
			invalid = append(invalid, "PREP_LEAD_MINUTES")
		} else {
			cfg.PrepLeadMinutes = n
		}
	}

	if v := strings.TrimSpace(getenv("REMINDER_INTERVAL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			invalid = append(invalid, "REMINDER_INTERVAL")
		} else {
			cfg.ReminderInterval = d
		}
	}

	if v := strings.TrimSpace(getenv("MIGRATIONS_AUTO")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			invalid = append(invalid, "MIGRATIONS_AUTO")
		} else {
			cfg.AutoMigrate = b
		}
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		invalid = append(invalid, "TIMEZONE")
	}

	// Проверяем обязательные поля
	var missing []string
	if cfg.DBDSN == "" {
		missing = append(missing, "DB_DSN")
	}

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "missing required values: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		problems = append(problems, "invalid values: "+strings.Join(invalid, ", "))
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// BotEnabled бот и напоминания работают только при заданном токене
func (c *Config) BotEnabled() bool {
	return c.TelegramToken != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
