package config

import (
	"os"
	"strconv"
)

const (
	redisAddrEnv        = "REDIS_ADDR"
	redisPasswordEnv    = "REDIS_PASSWORD"
	redisDBEnv          = "REDIS_DB"
	redisTLSEnv         = "REDIS_TLS"
	alarmRegistryKeyEnv = "ALARM_REGISTRY_KEY"

	defaultRedisAddr        = "localhost:6379"
	defaultAlarmRegistryKey = "scheduler:alarms"
)

// RedisConfig locates the Redis instance holding the registry of alarms
// currently registered on the platform queue.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TLS      bool

	// RegistryKey names the hash of registered alarms. Deployments sharing
	// one Redis need distinct keys so reconcile never cancels another
	// deployment's alarms.
	RegistryKey string
}

func LoadRedisConfig() (*RedisConfig, error) {
	cfg := &RedisConfig{
		Addr:        os.Getenv(redisAddrEnv),
		Password:    os.Getenv(redisPasswordEnv),
		RegistryKey: os.Getenv(alarmRegistryKeyEnv),
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultRedisAddr
	}
	if cfg.RegistryKey == "" {
		cfg.RegistryKey = defaultAlarmRegistryKey
	}

	if raw := os.Getenv(redisDBEnv); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil || db < 0 {
			return nil, ErrInvalidRedisDB
		}
		cfg.DB = db
	}

	if raw := os.Getenv(redisTLSEnv); raw != "" {
		useTLS, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, ErrInvalidRedisTLS
		}
		cfg.TLS = useTLS
	}

	return cfg, nil
}

func (c *RedisConfig) Validate() error {
	if c == nil || c.Addr == "" {
		return ErrRedisAddrMissing
	}
	return nil
}
