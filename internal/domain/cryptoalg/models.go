package cryptoalg

import (
	"crypto"
	"encoding/base64"
	"fmt"
	"strings"
)

// KeyEncoding tags the DER encoding of a key.
type KeyEncoding int

const (
	// EncodingUnspecified means the encoding is unknown.
	EncodingUnspecified KeyEncoding = iota
	// EncodingPKCS1 is a bare RSAPrivateKey.
	EncodingPKCS1
	// EncodingPKCS8 is a PrivateKeyInfo wrapping an RSAPrivateKey.
	EncodingPKCS8
	// EncodingSPKI is a SubjectPublicKeyInfo.
	EncodingSPKI
)

func (e KeyEncoding) String() string {
	switch e {
	case EncodingPKCS1:
		return "PKCS#1"
	case EncodingPKCS8:
		return "PKCS#8"
	case EncodingSPKI:
		return "SPKI"
	default:
		return "unspecified"
	}
}

// SignatureAlgorithm selects the digest used under RSASSA-PKCS1-v1_5.
type SignatureAlgorithm string

const (
	// SignatureSHA256 is the default signature digest.
	SignatureSHA256 SignatureAlgorithm = "SHA-256"
	// SignatureSHA1 is kept for peers that still sign with SHA-1.
	SignatureSHA1 SignatureAlgorithm = "SHA-1"
)

// Hash maps the algorithm to its crypto.Hash.
func (a SignatureAlgorithm) Hash() (crypto.Hash, error) {
	switch a {
	case SignatureSHA256, "":
		return crypto.SHA256, nil
	case SignatureSHA1:
		return crypto.SHA1, nil
	default:
		return 0, fmt.Errorf("unsupported signature algorithm: %s", a)
	}
}

// ParseSignatureAlgorithm accepts "SHA-256", "SHA256", "SHA-1" and "SHA1" in any case, empty means SHA-256.
func ParseSignatureAlgorithm(s string) (SignatureAlgorithm, error) {
	switch strings.ToUpper(s) {
	case "", "SHA-256", "SHA256":
		return SignatureSHA256, nil
	case "SHA-1", "SHA1":
		return SignatureSHA1, nil
	default:
		return "", fmt.Errorf("unsupported signature algorithm: %s", s)
	}
}

// KeyPair is an immutable RSA key pair: an SPKI public key and a PKCS#1 private key.
type KeyPair struct {
	publicKey  []byte
	privateKey []byte
}

// NewKeyPair copies both keys into a new KeyPair.
func NewKeyPair(publicKey, privateKey []byte) *KeyPair {
	return &KeyPair{
		publicKey:  append([]byte(nil), publicKey...),
		privateKey: append([]byte(nil), privateKey...),
	}
}

// PublicKey returns a copy of the SPKI DER public key.
func (k *KeyPair) PublicKey() []byte {
	return append([]byte(nil), k.publicKey...)
}

// PrivateKey returns a copy of the PKCS#1 DER private key.
func (k *KeyPair) PrivateKey() []byte {
	return append([]byte(nil), k.privateKey...)
}

// PublicKeyBase64 returns the public key as standard padded Base64.
func (k *KeyPair) PublicKeyBase64() string {
	return base64.StdEncoding.EncodeToString(k.publicKey)
}

// PrivateKeyBase64 returns the private key as standard padded Base64.
func (k *KeyPair) PrivateKeyBase64() string {
	return base64.StdEncoding.EncodeToString(k.privateKey)
}
