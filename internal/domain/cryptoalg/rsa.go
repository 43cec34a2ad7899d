package cryptoalg

import "context"

// DefaultRSAKeySize is the modulus size used when none is requested.
const DefaultRSAKeySize = 2048

// RSAProcessor handles RSA encryption and signing with PKCS#1 v1.5 padding.
// Public keys are always SPKI DER. Every operation taking a private key accepts
// PKCS#1 or PKCS#8 DER without a format flag.
type RSAProcessor interface {
	// GenerateKeyPair generates an RSA key pair. The private key of the result is PKCS#1 encoded.
	GenerateKeyPair(ctx context.Context, bits int) (*KeyPair, error)

	// NormalizePrivateKey returns the PKCS#8 form of a PKCS#1 or PKCS#8 private key.
	NormalizePrivateKey(privateKey []byte) ([]byte, error)

	// Encrypt encrypts a single block with RSAES-PKCS1-v1_5. Output differs on every call.
	Encrypt(data, publicKey []byte) ([]byte, error)

	// EncryptBase64 encrypts data and Base64 encodes the ciphertext.
	EncryptBase64(data, publicKey []byte) (string, error)

	// Decrypt decrypts RSAES-PKCS1-v1_5 ciphertext.
	Decrypt(ciphertext, privateKey []byte) ([]byte, error)

	// DecryptFromBase64 decodes Base64 ciphertext and decrypts it.
	DecryptFromBase64(ciphertext string, privateKey []byte) ([]byte, error)

	// Sign signs data with RSASSA-PKCS1-v1_5 using the given digest.
	Sign(data, privateKey []byte, alg SignatureAlgorithm) ([]byte, error)

	// SignSHA1 signs data with RSASSA-PKCS1-v1_5 over SHA-1.
	SignSHA1(data, privateKey []byte) ([]byte, error)

	// SignBase64 signs the UTF-8 bytes of text over SHA-256 and Base64 encodes the signature.
	SignBase64(text string, privateKey []byte) (string, error)

	// Verify checks an RSASSA-PKCS1-v1_5 signature. A mismatch yields false and a nil error.
	Verify(data, publicKey, signature []byte, alg SignatureAlgorithm) (bool, error)

	// VerifySHA1 checks an RSASSA-PKCS1-v1_5 signature over SHA-1.
	VerifySHA1(data, publicKey, signature []byte) (bool, error)

	// VerifyFromBase64 checks a Base64 signature over the UTF-8 bytes of text using SHA-256.
	VerifyFromBase64(text string, publicKey []byte, signature string) (bool, error)

	// ExtractPublicKey derives the SPKI public key from a private key.
	ExtractPublicKey(privateKey []byte) ([]byte, error)
}
