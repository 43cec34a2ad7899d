package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/crypto-interop/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// AlgorithmRSA is the only algorithm stored key pairs use
const AlgorithmRSA = "RSA"

// ErrKeyPairNotFound is returned when no key pair has the requested ID
var ErrKeyPairNotFound = errors.New("key pair not found")

// ErrKeyPairExists is returned when a key pair with the same ID is already stored
var ErrKeyPairExists = errors.New("key pair already exists")

// KeyPairMeta entity. PublicKey is Base64 SPKI DER and PrivateKey is Base64 PKCS#1 DER.
type KeyPairMeta struct {
	ID              string    `validate:"required,uuid4"`
	Algorithm       string    `validate:"required,oneof=RSA"`
	KeySize         uint32    `validate:"required,rsa_key_size"`
	PublicKey       string    `validate:"required,base64"`
	PrivateKey      string    `validate:"required,base64"`
	DateTimeCreated time.Time `validate:"required"`
	UserID          string    `validate:"required,uuid4"`
}

// Validate for validating KeyPairMeta struct
func (k *KeyPairMeta) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	return formatValidationError(validate.Struct(k))
}

// Redacted returns a copy without the private key.
func (k *KeyPairMeta) Redacted() *KeyPairMeta {
	redacted := *k
	redacted.PrivateKey = ""
	return &redacted
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
