package models

import (
	"time"

	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"
)

// KeyPairModel is the database model for stored RSA key pairs. GORM maps the columns and the bolt store keeps it as JSON.
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Algorithm       string    `gorm:"type:varchar(20);not null" json:"algorithm"`
	KeySize         uint32    `gorm:"type:integer;not null;index" json:"key_size"`
	PublicKey       string    `gorm:"type:text;not null" json:"public_key"`
	PrivateKey      string    `gorm:"type:text;not null" json:"private_key"`
	DateTimeCreated time.Time `gorm:"not null;index" json:"date_time_created"`
	UserID          string    `gorm:"not null;index;type:varchar(255)" json:"user_id"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeyPairModel) ToDomain() *keys.KeyPairMeta {
	return &keys.KeyPairMeta{
		ID:              m.ID,
		Algorithm:       m.Algorithm,
		KeySize:         m.KeySize,
		PublicKey:       m.PublicKey,
		PrivateKey:      m.PrivateKey,
		DateTimeCreated: m.DateTimeCreated,
		UserID:          m.UserID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyPairModel) FromDomain(k *keys.KeyPairMeta) {
	m.ID = k.ID
	m.Algorithm = k.Algorithm
	m.KeySize = k.KeySize
	m.PublicKey = k.PublicKey
	m.PrivateKey = k.PrivateKey
	m.DateTimeCreated = k.DateTimeCreated
	m.UserID = k.UserID
}
