package cryptoalg

// Hasher computes MD5 digests.
type Hasher interface {
	// Digest returns the 16 byte MD5 digest of data.
	Digest(data []byte) []byte
	// DigestHex returns the digest as 32 lowercase hex characters.
	DigestHex(data []byte) string
	// DigestString hashes the UTF-8 bytes of text.
	DigestString(text string) []byte
	// DigestStringHex hashes the UTF-8 bytes of text and hex encodes the digest.
	DigestStringHex(text string) string
}
