//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keySizeRequest struct {
	KeySize uint32 `validate:"rsa_key_size"`
}

type signedKeySizeRequest struct {
	Bits int `validate:"rsa_key_size"`
}

func TestRSAKeySizeValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   interface{}
		wantErr bool
	}{
		{"1024 unsigned", keySizeRequest{KeySize: 1024}, false},
		{"2048 unsigned", keySizeRequest{KeySize: 2048}, false},
		{"4096 signed", signedKeySizeRequest{Bits: 4096}, false},
		{"512 rejected", keySizeRequest{KeySize: 512}, true},
		{"zero rejected", signedKeySizeRequest{Bits: 0}, true},
		{"negative rejected", signedKeySizeRequest{Bits: -2048}, true},
		{"odd size rejected", signedKeySizeRequest{Bits: 2047}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsSupportedRSAKeySize(t *testing.T) {
	assert.True(t, IsSupportedRSAKeySize(3072))
	assert.False(t, IsSupportedRSAKeySize(1536))
	assert.False(t, IsSupportedRSAKeySize(-1))
}
