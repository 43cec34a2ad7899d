//go:build unit
// +build unit

package cryptoalg

import (
	"crypto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignatureAlgorithm(t *testing.T) {
	tests := []struct {
		input    string
		expected SignatureAlgorithm
		wantErr  bool
	}{
		{"", SignatureSHA256, false},
		{"SHA-256", SignatureSHA256, false},
		{"SHA256", SignatureSHA256, false},
		{"sha-256", SignatureSHA256, false},
		{"sha256", SignatureSHA256, false},
		{"SHA-1", SignatureSHA1, false},
		{"SHA1", SignatureSHA1, false},
		{"sha-1", SignatureSHA1, false},
		{"Sha1", SignatureSHA1, false},
		{"MD5", "", true},
		{"SHA-512", "", true},
		{" SHA-256", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			alg, err := ParseSignatureAlgorithm(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, alg)
		})
	}
}

func TestSignatureAlgorithm_Hash(t *testing.T) {
	hash, err := SignatureSHA256.Hash()
	require.NoError(t, err)
	assert.Equal(t, crypto.SHA256, hash)

	hash, err = SignatureSHA1.Hash()
	require.NoError(t, err)
	assert.Equal(t, crypto.SHA1, hash)

	_, err = SignatureAlgorithm("MD5").Hash()
	assert.Error(t, err)
}
