package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

var errMissingPayload = errors.New("validation failed: exactly one of text or data is required")

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	Message string `json:"message"`
}

// PayloadRequest carries input either as UTF-8 text or as Base64 bytes, never both
type PayloadRequest struct {
	Text *string `json:"text,omitempty"`
	Data *string `json:"data,omitempty" validate:"omitempty,base64"`
}

// MD5Request is the body of POST /hash/md5
type MD5Request struct {
	PayloadRequest
}

// MD5Response carries the lowercase hex digest
type MD5Response struct {
	Digest string `json:"digest"`
}

// AESEncryptRequest is the body of POST /aes/encrypt. Key is Base64 and normalized to 16 bytes.
type AESEncryptRequest struct {
	Key string `json:"key" validate:"required,base64"`
	PayloadRequest
}

// AESEncryptResponse carries the Base64 ciphertext
type AESEncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// AESDecryptRequest is the body of POST /aes/decrypt
type AESDecryptRequest struct {
	Key        string `json:"key" validate:"required,base64"`
	Ciphertext string `json:"ciphertext" validate:"required,base64"`
}

// DataResponse carries Base64 bytes and, when they are valid UTF-8, the text
type DataResponse struct {
	Data string  `json:"data"`
	Text *string `json:"text,omitempty"`
}

// ConvertKeyRequest is the body of POST /keys/convert
type ConvertKeyRequest struct {
	PrivateKey string `json:"private_key" validate:"required,base64"`
	Target     string `json:"target" validate:"required,oneof=pkcs1 pkcs8 PKCS#1 PKCS#8"`
}

// ConvertKeyResponse carries the converted Base64 DER private key
type ConvertKeyResponse struct {
	PrivateKey string `json:"private_key"`
	Encoding   string `json:"encoding"`
}

// ExtractPublicKeyRequest is the body of POST /keys/extract-public
type ExtractPublicKeyRequest struct {
	PrivateKey string `json:"private_key" validate:"required,base64"`
}

// PublicKeyResponse carries a Base64 SPKI public key
type PublicKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// GenerateKeyPairRequest is the body of POST /keys. A zero key size selects the default.
type GenerateKeyPairRequest struct {
	KeySize int `json:"key_size" validate:"omitempty,rsa_key_size"`
}

// KeyPairMetaResponse describes a stored key pair without its private key
type KeyPairMetaResponse struct {
	ID              string    `json:"id"`
	Algorithm       string    `json:"algorithm"`
	KeySize         uint32    `json:"key_size"`
	PublicKey       string    `json:"public_key"`
	DateTimeCreated time.Time `json:"date_time_created"`
	UserID          string    `json:"user_id"`
}

// NewKeyPairMetaResponse maps the domain entity to its response
func NewKeyPairMetaResponse(meta *keys.KeyPairMeta) KeyPairMetaResponse {
	return KeyPairMetaResponse{
		ID:              meta.ID,
		Algorithm:       meta.Algorithm,
		KeySize:         meta.KeySize,
		PublicKey:       meta.PublicKey,
		DateTimeCreated: meta.DateTimeCreated,
		UserID:          meta.UserID,
	}
}

// EncryptRequest is the body of POST /keys/:id/encrypt
type EncryptRequest struct {
	PayloadRequest
}

// DecryptRequest is the body of POST /keys/:id/decrypt
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required,base64"`
}

// SignRequest is the body of POST /keys/:id/sign
type SignRequest struct {
	PayloadRequest
	Algorithm string `json:"algorithm"`
}

// SignResponse carries the Base64 signature
type SignResponse struct {
	Signature string `json:"signature"`
}

// VerifyRequest is the body of POST /keys/:id/verify
type VerifyRequest struct {
	PayloadRequest
	Signature string `json:"signature" validate:"required,base64"`
	Algorithm string `json:"algorithm"`
}

// VerifyResponse reports whether the signature matched
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

func validateStruct(request interface{}) error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(request); err != nil {
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
	return nil
}

// Bytes returns the input bytes. Text is taken as UTF-8, Data is Base64 decoded.
func (p *PayloadRequest) Bytes() ([]byte, error) {
	if p.Text != nil {
		return codec.UTF8Encode(*p.Text), nil
	}
	if p.Data != nil {
		return codec.Base64Decode(*p.Data)
	}
	return nil, errMissingPayload
}

// Validate checks that exactly one of text or data is set
func (p *PayloadRequest) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	if (p.Text == nil) == (p.Data == nil) {
		return errMissingPayload
	}
	return nil
}

// Validate for validating MD5Request struct
func (r *MD5Request) Validate() error {
	return r.PayloadRequest.Validate()
}

// Validate for validating AESEncryptRequest struct
func (r *AESEncryptRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return r.PayloadRequest.Validate()
}

// Validate for validating AESDecryptRequest struct
func (r *AESDecryptRequest) Validate() error {
	return validateStruct(r)
}

// Validate for validating ConvertKeyRequest struct
func (r *ConvertKeyRequest) Validate() error {
	return validateStruct(r)
}

// Validate for validating ExtractPublicKeyRequest struct
func (r *ExtractPublicKeyRequest) Validate() error {
	return validateStruct(r)
}

// Validate for validating GenerateKeyPairRequest struct
func (r *GenerateKeyPairRequest) Validate() error {
	return validateStruct(r)
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return r.PayloadRequest.Validate()
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateStruct(r)
}

// Validate for validating SignRequest struct
func (r *SignRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return r.PayloadRequest.Validate()
}

// Validate for validating VerifyRequest struct
func (r *VerifyRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return r.PayloadRequest.Validate()
}

// NewDataResponse encodes data as Base64 and adds the text form when data is valid UTF-8
func NewDataResponse(data []byte) DataResponse {
	response := DataResponse{Data: codec.Base64Encode(data)}
	if text, err := codec.UTF8Decode(data); err == nil {
		response.Text = &text
	}
	return response
}
