package config

import (
	"errors"
	"fmt"
)

func ValidateForRun(cfg *Config) error {
	var errs []error

	if err := cfg.Redis.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Database.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Horizon.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.TaskQueue.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
