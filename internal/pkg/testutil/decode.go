package testutil

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

// MustDecodeBase64 decodes a fixture and fails the test on malformed input.
func MustDecodeBase64(t *testing.T, text string) []byte {
	t.Helper()

	data, err := base64.StdEncoding.DecodeString(text)
	require.NoError(t, err)
	return data
}
