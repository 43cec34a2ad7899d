package validators

import (
	"github.com/go-playground/validator/v10"
)

// RSAKeySizeTag is the struct tag name RSAKeySizeValidation is registered under.
const RSAKeySizeTag = "rsa_key_size"

var supportedRSAKeySizes = map[uint64]struct{}{
	1024: {},
	2048: {},
	3072: {},
	4096: {},
}

// IsSupportedRSAKeySize reports whether bits is a modulus size the key-pair generator accepts.
func IsSupportedRSAKeySize(bits int) bool {
	if bits <= 0 {
		return false
	}
	_, ok := supportedRSAKeySizes[uint64(bits)]
	return ok
}

// RSAKeySizeValidation validates an RSA modulus size field. Signed and unsigned integer fields are accepted.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.CanUint() {
		_, ok := supportedRSAKeySizes[field.Uint()]
		return ok
	}
	if field.CanInt() {
		return IsSupportedRSAKeySize(int(field.Int()))
	}
	return false
}

// New returns a validator with the custom tags of this module registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(RSAKeySizeTag, RSAKeySizeValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
