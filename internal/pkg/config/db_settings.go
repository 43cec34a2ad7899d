package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Supported database types for the key-pair store
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
	BoltDbType     = "bolt"
)

// DatabaseSettings selects the database backing the key-pair store.
// An empty DSN with the sqlite type opens an in-memory database. For bolt the DSN is the database file path.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite bolt"`
	DSN  string `mapstructure:"dsn" validate:"required_if=Type postgres,required_if=Type bolt"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
