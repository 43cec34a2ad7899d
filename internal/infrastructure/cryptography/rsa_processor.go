package cryptography

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	_ "crypto/sha1" // registers crypto.SHA1
	_ "crypto/sha256"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/keyformat"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/logger"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/validators"
)

// pkcs1v15Overhead is the minimum padding RSAES-PKCS1-v1_5 adds to a block.
const pkcs1v15Overhead = 11

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

type generatedKey struct {
	key *rsa.PrivateKey
	err error
}

// GenerateKeyPair generates an RSA key pair. Zero bits selects cryptoalg.DefaultRSAKeySize;
// sizes outside 1024, 2048, 3072 and 4096 fail with cryptoalg.ErrInvalidKeySize.
func (r *rsaProcessor) GenerateKeyPair(ctx context.Context, bits int) (*cryptoalg.KeyPair, error) {
	if bits == 0 {
		bits = cryptoalg.DefaultRSAKeySize
	}
	if !validators.IsSupportedRSAKeySize(bits) {
		return nil, fmt.Errorf("unsupported RSA key size %d: %w", bits, cryptoalg.ErrInvalidKeySize)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make(chan generatedKey, 1)
	go func() {
		key, err := rsa.GenerateKey(rand.Reader, bits)
		result <- generatedKey{key: key, err: err}
	}()

	var generated generatedKey
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case generated = <-result:
	}
	if generated.err != nil {
		return nil, fmt.Errorf("failed to generate RSA keys: %w", generated.err)
	}

	publicKey, err := x509.MarshalPKIXPublicKey(&generated.key.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	pkcs8, err := x509.MarshalPKCS8PrivateKey(generated.key)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	pkcs1, err := keyformat.PKCS8ToPKCS1(pkcs8)
	if err != nil {
		return nil, fmt.Errorf("failed to convert private key to PKCS#1: %w", err)
	}

	r.logger.Info("Generated RSA key pair with ", bits, " bits")
	return cryptoalg.NewKeyPair(publicKey, pkcs1), nil
}

// importPrivateKey interprets der as PKCS#8 first and as PKCS#1 second.
// It returns the parsed key together with its PKCS#8 encoding.
func importPrivateKey(der []byte) (*rsa.PrivateKey, []byte, error) {
	attempts := make([]cryptoalg.ImportAttempt, 0, 2)

	key, err := parsePKCS8RSA(der)
	if err == nil {
		return key, der, nil
	}
	attempts = append(attempts, cryptoalg.ImportAttempt{Encoding: cryptoalg.EncodingPKCS8, Err: err})

	pkcs8, err := keyformat.PKCS1ToPKCS8(der)
	if err == nil {
		key, err = parsePKCS8RSA(pkcs8)
		if err == nil {
			return key, pkcs8, nil
		}
	}
	attempts = append(attempts, cryptoalg.ImportAttempt{Encoding: cryptoalg.EncodingPKCS1, Err: err})

	return nil, nil, &cryptoalg.KeyImportError{Attempts: attempts}
}

func parsePKCS8RSA(der []byte) (*rsa.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is of type %T, not RSA", parsed)
	}
	return key, nil
}

func parsePublicKey(der []byte) (*rsa.PublicKey, error) {
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w: %w", cryptoalg.ErrKeyImport, err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is of type %T, not RSA: %w", parsed, cryptoalg.ErrKeyImport)
	}
	return key, nil
}

func (r *rsaProcessor) NormalizePrivateKey(privateKey []byte) ([]byte, error) {
	_, pkcs8, err := importPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), pkcs8...), nil
}

// Encrypt encrypts a single block. Messages longer than the modulus size minus 11 bytes are rejected.
func (r *rsaProcessor) Encrypt(data, publicKey []byte) ([]byte, error) {
	key, err := parsePublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	if limit := key.Size() - pkcs1v15Overhead; len(data) > limit {
		return nil, fmt.Errorf("message of %d bytes exceeds %d bytes: %w", len(data), limit, cryptoalg.ErrMessageTooLong)
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, key, data)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Info("RSA encryption succeeded")
	return ciphertext, nil
}

func (r *rsaProcessor) EncryptBase64(data, publicKey []byte) (string, error) {
	ciphertext, err := r.Encrypt(data, publicKey)
	if err != nil {
		return "", err
	}
	return codec.Base64Encode(ciphertext), nil
}

func (r *rsaProcessor) Decrypt(ciphertext, privateKey []byte) ([]byte, error) {
	key, _, err := importPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, key, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w: %w", cryptoalg.ErrDecryption, err)
	}

	r.logger.Info("RSA decryption succeeded")
	return plaintext, nil
}

func (r *rsaProcessor) DecryptFromBase64(ciphertext string, privateKey []byte) ([]byte, error) {
	raw, err := codec.Base64Decode(ciphertext)
	if err != nil {
		return nil, err
	}
	return r.Decrypt(raw, privateKey)
}

func digest(data []byte, alg cryptoalg.SignatureAlgorithm) (crypto.Hash, []byte, error) {
	hash, err := alg.Hash()
	if err != nil {
		return 0, nil, err
	}
	h := hash.New()
	h.Write(data)
	return hash, h.Sum(nil), nil
}

func (r *rsaProcessor) Sign(data, privateKey []byte, alg cryptoalg.SignatureAlgorithm) ([]byte, error) {
	key, _, err := importPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	hash, hashed, err := digest(data, alg)
	if err != nil {
		return nil, err
	}

	signature, err := rsa.SignPKCS1v15(nil, key, hash, hashed)
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	r.logger.Info("RSA signing succeeded")
	return signature, nil
}

func (r *rsaProcessor) SignSHA1(data, privateKey []byte) ([]byte, error) {
	return r.Sign(data, privateKey, cryptoalg.SignatureSHA1)
}

func (r *rsaProcessor) SignBase64(text string, privateKey []byte) (string, error) {
	signature, err := r.Sign(codec.UTF8Encode(text), privateKey, cryptoalg.SignatureSHA256)
	if err != nil {
		return "", err
	}
	return codec.Base64Encode(signature), nil
}

// Verify returns false without an error when the signature does not match.
func (r *rsaProcessor) Verify(data, publicKey, signature []byte, alg cryptoalg.SignatureAlgorithm) (bool, error) {
	key, err := parsePublicKey(publicKey)
	if err != nil {
		return false, err
	}

	hash, hashed, err := digest(data, alg)
	if err != nil {
		return false, err
	}

	if err := rsa.VerifyPKCS1v15(key, hash, hashed, signature); err != nil {
		if errors.Is(err, rsa.ErrVerification) {
			r.logger.Info("RSA signature mismatch")
		} else {
			r.logger.Warn("RSA signature rejected: ", err)
		}
		return false, nil
	}

	r.logger.Info("RSA signature verified successfully")
	return true, nil
}

func (r *rsaProcessor) VerifySHA1(data, publicKey, signature []byte) (bool, error) {
	return r.Verify(data, publicKey, signature, cryptoalg.SignatureSHA1)
}

func (r *rsaProcessor) VerifyFromBase64(text string, publicKey []byte, signature string) (bool, error) {
	raw, err := codec.Base64Decode(signature)
	if err != nil {
		return false, err
	}
	return r.Verify(codec.UTF8Encode(text), publicKey, raw, cryptoalg.SignatureSHA256)
}

func (r *rsaProcessor) ExtractPublicKey(privateKey []byte) ([]byte, error) {
	key, _, err := importPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	publicKey, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}

	r.logger.Info("Extracted RSA public key")
	return publicKey, nil
}
