//go:build unit
// +build unit

package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MGTheTrain/crypto-interop/internal/pkg/config"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenKeyPairRepository(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	tests := []struct {
		name     string
		settings config.DatabaseSettings
		wantErr  bool
	}{
		{"sqlite in memory", config.DatabaseSettings{Type: config.SqliteDbType}, false},
		{"bolt file", config.DatabaseSettings{Type: config.BoltDbType, DSN: filepath.Join(t.TempDir(), "store.db")}, false},
		{"bolt without path", config.DatabaseSettings{Type: config.BoltDbType}, true},
		{"unsupported", config.DatabaseSettings{Type: "mysql", DSN: "root@/db"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, closeFn, err := OpenKeyPairRepository(tt.settings, log)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { _ = closeFn() })

			keyPair := newBoltTestKeyPair(uuid.NewString(), 2048, time.Now())
			require.NoError(t, repo.Create(context.Background(), keyPair))

			fetched, err := repo.GetByID(context.Background(), keyPair.ID)
			require.NoError(t, err)
			assert.Equal(t, keyPair.ID, fetched.ID)
		})
	}
}
