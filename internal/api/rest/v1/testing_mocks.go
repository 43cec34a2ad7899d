//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyPairService is a mock implementation of keys.KeyPairService
type MockKeyPairService struct {
	mock.Mock
}

func (m *MockKeyPairService) Generate(ctx context.Context, userID string, bits int) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, userID, bits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) DeleteByID(ctx context.Context, keyPairID string) error {
	args := m.Called(ctx, keyPairID)
	return args.Error(0)
}

func (m *MockKeyPairService) PublicKey(ctx context.Context, keyPairID string) ([]byte, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKeyPairService) Encrypt(ctx context.Context, keyPairID string, data []byte) ([]byte, error) {
	args := m.Called(ctx, keyPairID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKeyPairService) Decrypt(ctx context.Context, keyPairID string, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, keyPairID, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKeyPairService) Sign(ctx context.Context, keyPairID string, data []byte, alg cryptoalg.SignatureAlgorithm) ([]byte, error) {
	args := m.Called(ctx, keyPairID, data, alg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKeyPairService) Verify(ctx context.Context, keyPairID string, data, signature []byte, alg cryptoalg.SignatureAlgorithm) (bool, error) {
	args := m.Called(ctx, keyPairID, data, signature, alg)
	return args.Bool(0), args.Error(1)
}
