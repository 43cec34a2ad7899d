package keys

import (
	"context"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
)

// KeyPairRepository defines the persistence operations for key pairs
type KeyPairRepository interface {
	Create(ctx context.Context, keyPair *KeyPairMeta) error
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, keyPairID string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, keyPairID string) error
}

// KeyPairMetadataService manages stored key pairs. Returned metadata never carries the private key.
type KeyPairMetadataService interface {
	// Generate creates, stores and returns a new RSA key pair of the given size.
	Generate(ctx context.Context, userID string, bits int) (*KeyPairMeta, error)

	// List retrieves key pair metadata matching query.
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)

	// GetByID retrieves the metadata of a key pair by its unique ID.
	GetByID(ctx context.Context, keyPairID string) (*KeyPairMeta, error)

	// DeleteByID deletes a key pair.
	DeleteByID(ctx context.Context, keyPairID string) error

	// PublicKey returns the SPKI DER public key of a key pair.
	PublicKey(ctx context.Context, keyPairID string) ([]byte, error)
}

// KeyPairCryptoService runs RSA operations with stored key pairs
type KeyPairCryptoService interface {
	Encrypt(ctx context.Context, keyPairID string, data []byte) ([]byte, error)
	Decrypt(ctx context.Context, keyPairID string, ciphertext []byte) ([]byte, error)
	Sign(ctx context.Context, keyPairID string, data []byte, alg cryptoalg.SignatureAlgorithm) ([]byte, error)
	Verify(ctx context.Context, keyPairID string, data, signature []byte, alg cryptoalg.SignatureAlgorithm) (bool, error)
}

// KeyPairService combines metadata management and cryptographic use of stored key pairs
type KeyPairService interface {
	KeyPairMetadataService
	KeyPairCryptoService
}
