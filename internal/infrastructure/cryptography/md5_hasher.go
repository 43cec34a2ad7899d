package cryptography

import (
	"crypto/md5" // #nosec G501 -- MD5 is required for compatibility, never for integrity.

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/codec"
)

type md5Hasher struct{}

// NewMD5Hasher returns a stateless MD5 Hasher.
func NewMD5Hasher() cryptoalg.Hasher {
	return md5Hasher{}
}

func (md5Hasher) Digest(data []byte) []byte {
	sum := md5.Sum(data) // #nosec G401
	return sum[:]
}

func (h md5Hasher) DigestHex(data []byte) string {
	return codec.HexEncode(h.Digest(data))
}

func (h md5Hasher) DigestString(text string) []byte {
	return h.Digest(codec.UTF8Encode(text))
}

func (h md5Hasher) DigestStringHex(text string) string {
	return h.DigestHex(codec.UTF8Encode(text))
}
