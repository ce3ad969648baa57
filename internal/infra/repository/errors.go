package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

var (
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	ErrStoreNotOpen      = errors.New("database connection is not initialized")
)

// translate maps gorm errors onto domain sentinels. notFound is returned for
// gorm.ErrRecordNotFound.
func translate(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrConflict
	default:
		return err
	}
}
