//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"

	"github.com/stretchr/testify/assert"
)

func TestKeyPairModel_RoundTrip(t *testing.T) {
	meta := &keys.KeyPairMeta{
		ID:              "3f0b2c1e-6a8d-4f7e-9b1a-2c3d4e5f6a7b",
		Algorithm:       keys.AlgorithmRSA,
		KeySize:         2048,
		PublicKey:       "cHVibGlj",
		PrivateKey:      "cHJpdmF0ZQ==",
		DateTimeCreated: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UserID:          "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d",
	}

	model := &KeyPairModel{}
	model.FromDomain(meta)

	assert.Equal(t, meta.ID, model.ID)
	assert.Equal(t, meta.PrivateKey, model.PrivateKey)
	assert.Equal(t, meta, model.ToDomain())
	assert.Equal(t, "key_pairs", model.TableName())
}
