package cryptoalg

// AESKeySize is the only AES key size the processor operates with (AES-128).
// Keys of any other length are normalized to it before use.
const AESKeySize = 16

// AESProcessor handles AES-128-CBC symmetric encryption with a constant IV.
// The constant IV makes ciphertexts deterministic so they match a companion system
// byte for byte. It is NOT confidentiality-secure for general use.
type AESProcessor interface {
	// GenerateKey generates a random 16 byte AES key.
	GenerateKey() ([]byte, error)

	// NormalizeKey truncates or zero-pads key to exactly AESKeySize bytes.
	NormalizeKey(key []byte) []byte

	// Encrypt encrypts plaintext data using AES-128-CBC with PKCS#7 padding.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt decrypts AES ciphertext using the provided symmetric key.
	// Returns an error wrapping ErrDecryption when the padding is invalid or the input is malformed.
	Decrypt(ciphertext, key []byte) ([]byte, error)

	// EncryptBase64 encrypts data and returns the Base64 encoded ciphertext.
	EncryptBase64(data, key []byte) (string, error)

	// DecryptFromBase64 decodes Base64 ciphertext and decrypts it.
	DecryptFromBase64(ciphertext string, key []byte) ([]byte, error)

	// EncryptString encrypts the UTF-8 bytes of text.
	EncryptString(text string, key []byte) ([]byte, error)

	// EncryptBase64String encrypts the UTF-8 bytes of text and returns Base64.
	EncryptBase64String(text string, key []byte) (string, error)

	// DecryptStringFromBase64 decodes, decrypts and interprets the plaintext as UTF-8.
	DecryptStringFromBase64(ciphertext string, key []byte) (string, error)
}
