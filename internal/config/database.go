package config

import "os"

const (
	databaseDriverEnv = "DATABASE_DRIVER"
	databaseDSNEnv    = "DATABASE_DSN"

	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	defaultDatabaseDriver = DriverSQLite
	defaultSQLiteDSN      = "file:scheduler.db?_foreign_keys=on"
)

type DatabaseConfig struct {
	Driver string
	DSN    string
}

func LoadDatabaseConfig() *DatabaseConfig {
	driver := os.Getenv(databaseDriverEnv)
	if driver == "" {
		driver = defaultDatabaseDriver
	}

	dsn := os.Getenv(databaseDSNEnv)
	if dsn == "" && driver == DriverSQLite {
		dsn = defaultSQLiteDSN
	}

	return &DatabaseConfig{
		Driver: driver,
		DSN:    dsn,
	}
}

func (c *DatabaseConfig) Validate() error {
	if c == nil {
		return ErrDatabaseDSNMissing
	}
	switch c.Driver {
	case DriverSQLite, DriverMySQL:
	default:
		return ErrUnknownDatabaseDriver
	}
	if c.DSN == "" {
		return ErrDatabaseDSNMissing
	}
	return nil
}
