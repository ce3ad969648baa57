package config

import (
	"os"
	"strconv"
	"time"
)

const (
	sweepIntervalSecondsEnv = "SWEEP_INTERVAL_SECONDS"
	platformHorizonLimitEnv = "PLATFORM_HORIZON_LIMIT"

	defaultSweepIntervalSeconds = 300
	defaultPlatformHorizonLimit = 64
)

type SweepConfig struct {
	Interval             time.Duration
	PlatformHorizonLimit int
}

func LoadSweepConfig() *SweepConfig {
	intervalSeconds := defaultSweepIntervalSeconds
	if v := os.Getenv(sweepIntervalSecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			intervalSeconds = parsed
		}
	}

	limit := defaultPlatformHorizonLimit
	if v := os.Getenv(platformHorizonLimitEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return &SweepConfig{
		Interval:             time.Duration(intervalSeconds) * time.Second,
		PlatformHorizonLimit: limit,
	}
}
