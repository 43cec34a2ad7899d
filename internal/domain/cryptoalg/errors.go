package cryptoalg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDecryption is returned when AES or RSA decryption fails padding validation or the input is malformed.
	ErrDecryption = errors.New("decryption failed")

	// ErrKeyImport is returned when a key cannot be interpreted in any supported encoding.
	ErrKeyImport = errors.New("key import failed")

	// ErrEncoding is returned for malformed Base64, Hex, UTF-8 or raw byte-string input.
	ErrEncoding = errors.New("malformed encoding")

	// ErrMessageTooLong is returned when a plaintext does not fit into a single RSA block.
	ErrMessageTooLong = errors.New("message too long for RSA key size")

	// ErrInvalidKeySize is returned when an unsupported RSA modulus size is requested.
	ErrInvalidKeySize = errors.New("invalid key size")
)

// ImportAttempt records one try at interpreting a private key in a given encoding.
type ImportAttempt struct {
	Encoding KeyEncoding
	Err      error
}

// KeyImportError is returned when every import attempt failed. It matches ErrKeyImport with errors.Is.
type KeyImportError struct {
	Attempts []ImportAttempt
}

func (e *KeyImportError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrKeyImport.Error())
	for i, attempt := range e.Attempts {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "as %s: %v", attempt.Encoding, attempt.Err)
	}
	return sb.String()
}

// Is reports whether target is ErrKeyImport.
func (e *KeyImportError) Is(target error) bool {
	return target == ErrKeyImport
}
