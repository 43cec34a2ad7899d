package persistence

import (
	"fmt"

	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/config"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/logger"
)

// OpenKeyPairRepository opens the backend selected by settings and returns the repository
// together with a function releasing the underlying connection.
func OpenKeyPairRepository(settings config.DatabaseSettings, logger logger.Logger) (keys.KeyPairRepository, func() error, error) {
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	if settings.Type == config.BoltDbType {
		db, err := OpenBoltDB(settings.DSN)
		if err != nil {
			return nil, nil, err
		}
		repo, err := NewBoltKeyPairRepository(db, logger)
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to create key pair repository: %w", err)
		}
		logger.Info("Opened bolt key pair store at ", settings.DSN)
		return repo, db.Close, nil
	}

	db, err := NewDBConnection(settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	repo, err := NewGormKeyPairRepository(db, logger)
	if err != nil {
		_ = CloseDB(db)
		return nil, nil, fmt.Errorf("failed to create key pair repository: %w", err)
	}
	logger.Info("Opened ", settings.Type, " key pair store")
	return repo, func() error { return CloseDB(db) }, nil
}
