package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/logger"

	"github.com/google/uuid"
)

// keyPairService implements the KeyPairService interface
type keyPairService struct {
	keyPairRepo  keys.KeyPairRepository
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewKeyPairService creates a new keyPairService instance
func NewKeyPairService(keyPairRepo keys.KeyPairRepository, rsaProcessor cryptoalg.RSAProcessor, logger logger.Logger) (keys.KeyPairService, error) {
	if keyPairRepo == nil || rsaProcessor == nil {
		return nil, fmt.Errorf("key pair repository and RSA processor are required")
	}
	return &keyPairService{
		keyPairRepo:  keyPairRepo,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

func (s *keyPairService) Generate(ctx context.Context, userID string, bits int) (*keys.KeyPairMeta, error) {
	if bits == 0 {
		bits = cryptoalg.DefaultRSAKeySize
	}

	keyPair, err := s.rsaProcessor.GenerateKeyPair(ctx, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	meta := &keys.KeyPairMeta{
		ID:              uuid.NewString(),
		Algorithm:       keys.AlgorithmRSA,
		KeySize:         uint32(bits), // #nosec G115 -- bits is one of the supported RSA sizes
		PublicKey:       keyPair.PublicKeyBase64(),
		PrivateKey:      keyPair.PrivateKeyBase64(),
		DateTimeCreated: time.Now().UTC(),
		UserID:          userID,
	}

	if err := s.keyPairRepo.Create(ctx, meta); err != nil {
		return nil, fmt.Errorf("failed to store key pair: %w", err)
	}

	s.logger.Info("Generated key pair ", meta.ID, " for user ", userID)
	return meta.Redacted(), nil
}

func (s *keyPairService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	keyPairs, err := s.keyPairRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	redacted := make([]*keys.KeyPairMeta, len(keyPairs))
	for i, keyPair := range keyPairs {
		redacted[i] = keyPair.Redacted()
	}
	return redacted, nil
}

func (s *keyPairService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	keyPair, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return keyPair.Redacted(), nil
}

func (s *keyPairService) DeleteByID(ctx context.Context, keyPairID string) error {
	if err := s.keyPairRepo.DeleteByID(ctx, keyPairID); err != nil {
		return err
	}
	s.logger.Info("Deleted key pair ", keyPairID)
	return nil
}

func (s *keyPairService) PublicKey(ctx context.Context, keyPairID string) ([]byte, error) {
	keyPair, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return decodeStoredKey(keyPair.PublicKey)
}

func (s *keyPairService) privateKey(ctx context.Context, keyPairID string) ([]byte, error) {
	keyPair, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return decodeStoredKey(keyPair.PrivateKey)
}

func decodeStoredKey(encoded string) ([]byte, error) {
	key, err := codec.Base64Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("stored key is corrupt: %w", err)
	}
	return key, nil
}

func (s *keyPairService) Encrypt(ctx context.Context, keyPairID string, data []byte) ([]byte, error) {
	publicKey, err := s.PublicKey(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return s.rsaProcessor.Encrypt(data, publicKey)
}

func (s *keyPairService) Decrypt(ctx context.Context, keyPairID string, ciphertext []byte) ([]byte, error) {
	privateKey, err := s.privateKey(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return s.rsaProcessor.Decrypt(ciphertext, privateKey)
}

func (s *keyPairService) Sign(ctx context.Context, keyPairID string, data []byte, alg cryptoalg.SignatureAlgorithm) ([]byte, error) {
	privateKey, err := s.privateKey(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return s.rsaProcessor.Sign(data, privateKey, alg)
}

func (s *keyPairService) Verify(ctx context.Context, keyPairID string, data, signature []byte, alg cryptoalg.SignatureAlgorithm) (bool, error) {
	publicKey, err := s.PublicKey(ctx, keyPairID)
	if err != nil {
		return false, err
	}
	return s.rsaProcessor.Verify(data, publicKey, signature, alg)
}
