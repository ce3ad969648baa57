package config

import (
	"os"
	"strconv"
)

const (
	horizonDesiredCountEnv  = "HORIZON_DESIRED_COUNT"
	horizonBiasEnv          = "HORIZON_BIAS"
	horizonMaxIterationsEnv = "HORIZON_MAX_ITERATIONS"

	defaultHorizonDesiredCount  = 10
	defaultHorizonBias          = 0.5
	defaultHorizonMaxIterations = 10000
)

// HorizonConfig controls how many future notifications are kept per reminder
// and how far interval discovery may walk before giving up.
type HorizonConfig struct {
	DesiredCount  int
	Bias          float64
	MaxIterations int
}

func LoadHorizonConfig() (*HorizonConfig, error) {
	desired := defaultHorizonDesiredCount
	if v := os.Getenv(horizonDesiredCountEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, ErrInvalidDesiredCount
		}
		desired = parsed
	}

	bias := defaultHorizonBias
	if v := os.Getenv(horizonBiasEnv); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, ErrInvalidBias
		}
		bias = parsed
	}

	maxIterations := defaultHorizonMaxIterations
	if v := os.Getenv(horizonMaxIterationsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxIterations = parsed
		}
	}

	return &HorizonConfig{
		DesiredCount:  desired,
		Bias:          bias,
		MaxIterations: maxIterations,
	}, nil
}

func (c *HorizonConfig) Validate() error {
	if c.DesiredCount < 1 {
		return ErrInvalidDesiredCount
	}
	if c.Bias < 0 || c.Bias > 1 {
		return ErrInvalidBias
	}
	return nil
}
