package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	portEnv     = "PORT"
	logLevelEnv = "LOG_LEVEL"
	timezoneEnv = "SCHEDULER_TIMEZONE"

	defaultPort     = "8080"
	defaultTimezone = "Local"
)

type Config struct {
	Port      string
	LogLevel  slog.Level
	Timezone  string
	Location  *time.Location
	TaskQueue TaskQueueConfig
	Redis     *RedisConfig
	Database  *DatabaseConfig
	Horizon   *HorizonConfig
	Sweep     *SweepConfig
}

type TaskQueueConfig struct {
	PrimindTasksURL string
	QueueName       string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string

	MaxRetries int
}

// Load reads the process configuration. A .env file in the working directory
// is applied first when present; variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port := os.Getenv(portEnv)
	if port == "" {
		port = defaultPort
	}

	timezone := os.Getenv(timezoneEnv)
	if timezone == "" {
		timezone = defaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, timezone)
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	horizonConfig, err := LoadHorizonConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:      port,
		LogLevel:  parseLogLevel(os.Getenv(logLevelEnv)),
		Timezone:  timezone,
		Location:  loc,
		TaskQueue: loadTaskQueueConfig(),
		Redis:     redisConfig,
		Database:  LoadDatabaseConfig(),
		Horizon:   horizonConfig,
		Sweep:     LoadSweepConfig(),
	}, nil
}

func loadTaskQueueConfig() TaskQueueConfig {
	queueName := os.Getenv("TASK_QUEUE_NAME")
	if queueName == "" {
		queueName = "notifications"
	}

	maxRetries := 3
	if v := os.Getenv("TASK_QUEUE_MAX_RETRIES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	return TaskQueueConfig{
		PrimindTasksURL: os.Getenv("PRIMIND_TASKS_URL"),
		QueueName:       queueName,

		GCloudProjectID:  os.Getenv("GCLOUD_PROJECT_ID"),
		GCloudLocationID: os.Getenv("GCLOUD_LOCATION_ID"),
		GCloudQueueID:    os.Getenv("GCLOUD_QUEUE_ID"),
		GCloudTargetURL:  os.Getenv("GCLOUD_TARGET_URL"),

		MaxRetries: maxRetries,
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
