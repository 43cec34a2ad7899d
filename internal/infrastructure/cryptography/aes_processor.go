package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/logger"
)

// FixedIV is the constant CBC initialization vector shared with the companion system.
//
// WARNING: a constant IV makes equal plaintexts produce equal ciphertexts under the same key.
// It exists only so both sides produce identical bytes. Do not use this cipher to protect new data.
var FixedIV = [aes.BlockSize]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

// aesProcessor implements the AESProcessor interface
type aesProcessor struct {
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (cryptoalg.AESProcessor, error) {
	return &aesProcessor{
		logger: logger,
	}, nil
}

// GenerateKey returns cryptoalg.AESKeySize random bytes.
func (a *aesProcessor) GenerateKey() ([]byte, error) {
	key := make([]byte, cryptoalg.AESKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}
	a.logger.Info("Generated AES key")
	return key, nil
}

// NormalizeKey truncates long keys and right-pads short keys with zero bytes.
func (a *aesProcessor) NormalizeKey(key []byte) []byte {
	normalized := make([]byte, cryptoalg.AESKeySize)
	copy(normalized, key)
	return normalized
}

func (a *aesProcessor) newCBC(key []byte) (cipher.Block, []byte, error) {
	block, err := aes.NewCipher(a.NormalizeKey(key))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	iv := FixedIV
	return block, iv[:], nil
}

func (a *aesProcessor) Encrypt(data, key []byte) ([]byte, error) {
	block, iv, err := a.newCBC(key)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(data, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	a.logger.Info("AES encryption succeeded")
	return ciphertext, nil
}

func (a *aesProcessor) Decrypt(ciphertext, key []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a positive multiple of the block size: %w", len(ciphertext), cryptoalg.ErrDecryption)
	}

	block, iv, err := a.newCBC(key)
	if err != nil {
		return nil, err
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	a.logger.Info("AES decryption succeeded")
	return plaintext, nil
}

func (a *aesProcessor) EncryptBase64(data, key []byte) (string, error) {
	ciphertext, err := a.Encrypt(data, key)
	if err != nil {
		return "", err
	}
	return codec.Base64Encode(ciphertext), nil
}

func (a *aesProcessor) DecryptFromBase64(ciphertext string, key []byte) ([]byte, error) {
	raw, err := codec.Base64Decode(ciphertext)
	if err != nil {
		return nil, err
	}
	return a.Decrypt(raw, key)
}

func (a *aesProcessor) EncryptString(text string, key []byte) ([]byte, error) {
	return a.Encrypt(codec.UTF8Encode(text), key)
}

func (a *aesProcessor) EncryptBase64String(text string, key []byte) (string, error) {
	return a.EncryptBase64(codec.UTF8Encode(text), key)
}

func (a *aesProcessor) DecryptStringFromBase64(ciphertext string, key []byte) (string, error) {
	plaintext, err := a.DecryptFromBase64(ciphertext, key)
	if err != nil {
		return "", err
	}
	return codec.UTF8Decode(plaintext)
}
