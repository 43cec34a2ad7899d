package keys

import (
	"github.com/go-playground/validator/v10"
)

// KeyPairQuery filters, sorts and pages key pair listings
type KeyPairQuery struct {
	UserID    string `validate:"omitempty,uuid4"`
	KeySize   uint32 `validate:"omitempty,oneof=1024 2048 3072 4096"`
	Limit     int    `validate:"omitempty,gt=0,lte=1000"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created key_size"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyPairQuery returns a query sorting the newest key pairs first
func NewKeyPairQuery() *KeyPairQuery {
	return &KeyPairQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating KeyPairQuery struct
func (q *KeyPairQuery) Validate() error {
	return formatValidationError(validator.New().Struct(q))
}
