//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/config"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	KeyPairRepo keys.KeyPairRepository
}

// SetupTestDB opens a migrated database of dbType and registers its cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	repo, err := NewGormKeyPairRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create key pair repository")

	return &TestContext{DB: db, KeyPairRepo: repo}
}

// CreateTestKeyPair returns a valid key pair record built from the interop fixtures
func CreateTestKeyPair(t *testing.T, userID string, keySize uint32, created time.Time) *keys.KeyPairMeta {
	t.Helper()

	return &keys.KeyPairMeta{
		ID:              uuid.NewString(),
		Algorithm:       keys.AlgorithmRSA,
		KeySize:         keySize,
		PublicKey:       testutil.InteropPKCS1PublicKey,
		PrivateKey:      testutil.InteropPKCS1PrivateKey,
		DateTimeCreated: created,
		UserID:          userID,
	}
}
