package config

import "errors"

var (
	ErrRedisAddrMissing      = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB        = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidRedisTLS       = errors.New("REDIS_TLS must be a boolean")
	ErrInvalidTimezone       = errors.New("SCHEDULER_TIMEZONE must be a valid IANA location")
	ErrUnknownDatabaseDriver = errors.New("DATABASE_DRIVER must be sqlite or mysql")
	ErrDatabaseDSNMissing    = errors.New("DATABASE_DSN is required")
	ErrInvalidDesiredCount   = errors.New("HORIZON_DESIRED_COUNT must be a positive integer")
	ErrInvalidBias           = errors.New("HORIZON_BIAS must be a number between 0 and 1")
)
