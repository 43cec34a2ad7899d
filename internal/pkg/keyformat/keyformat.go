package keyformat

import (
	encasn1 "encoding/asn1"
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// OIDRSAEncryption identifies rsaEncryption in an AlgorithmIdentifier.
var OIDRSAEncryption = encasn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}

var pkcs8AttributesTag = asn1.Tag(0).Constructed().ContextSpecific()

// Element is a single DER tag-length-value triple.
type Element struct {
	Tag asn1.Tag
	// Header is the number of bytes taken by the tag and the length octets.
	Header int
	Value  []byte
}

// Len returns the encoded size of the element.
func (e Element) Len() int {
	return e.Header + len(e.Value)
}

// ReadTLV reads the first element of der and returns it with the bytes that follow it.
func ReadTLV(der []byte) (Element, []byte, error) {
	input := cryptobyte.String(der)

	var raw cryptobyte.String
	var tag asn1.Tag
	if !input.ReadAnyASN1Element(&raw, &tag) {
		return Element{}, nil, fmt.Errorf("failed to read DER element: %w", cryptoalg.ErrKeyImport)
	}

	var value cryptobyte.String
	if !raw.ReadAnyASN1(&value, &tag) {
		return Element{}, nil, fmt.Errorf("failed to read DER element: %w", cryptoalg.ErrKeyImport)
	}

	elem := Element{
		Tag:    tag,
		Header: len(der) - len(input) - len(value),
		Value:  value,
	}
	return elem, input, nil
}

// PKCS1ToPKCS8 wraps an RSAPrivateKey into a PrivateKeyInfo with the rsaEncryption algorithm and NULL parameters.
func PKCS1ToPKCS8(pkcs1 []byte) ([]byte, error) {
	if err := checkRSAPrivateKeyShape(pkcs1); err != nil {
		return nil, err
	}

	b := cryptobyte.NewBuilder(make([]byte, 0, len(pkcs1)+26))
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(OIDRSAEncryption)
			b.AddASN1NULL()
		})
		b.AddASN1OctetString(pkcs1)
	})

	out, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to build PKCS#8 structure: %w: %w", cryptoalg.ErrKeyImport, err)
	}
	return out, nil
}

// PKCS8ToPKCS1 returns a copy of the RSAPrivateKey carried by a PrivateKeyInfo.
// The algorithm must be rsaEncryption; optional attributes are skipped.
func PKCS8ToPKCS1(pkcs8 []byte) ([]byte, error) {
	input := cryptobyte.String(pkcs8)

	var body cryptobyte.String
	if !input.ReadASN1(&body, asn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("PKCS#8 key is not a single DER SEQUENCE: %w", cryptoalg.ErrKeyImport)
	}

	var version int64
	if !body.ReadASN1Integer(&version) {
		return nil, fmt.Errorf("PKCS#8 key has no version: %w", cryptoalg.ErrKeyImport)
	}
	if version != 0 {
		return nil, fmt.Errorf("unsupported PKCS#8 version %d: %w", version, cryptoalg.ErrKeyImport)
	}

	var algID cryptobyte.String
	if !body.ReadASN1(&algID, asn1.SEQUENCE) {
		return nil, fmt.Errorf("PKCS#8 key has no algorithm identifier: %w", cryptoalg.ErrKeyImport)
	}

	var oid encasn1.ObjectIdentifier
	if !algID.ReadASN1ObjectIdentifier(&oid) {
		return nil, fmt.Errorf("PKCS#8 algorithm identifier is malformed: %w", cryptoalg.ErrKeyImport)
	}
	if !oid.Equal(OIDRSAEncryption) {
		return nil, fmt.Errorf("PKCS#8 key algorithm %s is not RSA: %w", oid, cryptoalg.ErrKeyImport)
	}

	if algID.PeekASN1Tag(asn1.NULL) {
		var params cryptobyte.String
		if !algID.ReadASN1(&params, asn1.NULL) || !params.Empty() {
			return nil, fmt.Errorf("PKCS#8 algorithm parameters are malformed: %w", cryptoalg.ErrKeyImport)
		}
	}
	if !algID.Empty() {
		return nil, fmt.Errorf("PKCS#8 algorithm identifier has trailing data: %w", cryptoalg.ErrKeyImport)
	}

	var payload cryptobyte.String
	if !body.ReadASN1(&payload, asn1.OCTET_STRING) {
		return nil, fmt.Errorf("PKCS#8 key has no private key octets: %w", cryptoalg.ErrKeyImport)
	}
	if !body.SkipOptionalASN1(pkcs8AttributesTag) || !body.Empty() {
		return nil, fmt.Errorf("PKCS#8 key has trailing data: %w", cryptoalg.ErrKeyImport)
	}

	if err := checkRSAPrivateKeyShape(payload); err != nil {
		return nil, err
	}

	return append([]byte(nil), payload...), nil
}

// Detect classifies der by the shape of its first two inner elements.
func Detect(der []byte) cryptoalg.KeyEncoding {
	outer, rest, err := ReadTLV(der)
	if err != nil || len(rest) != 0 || outer.Tag != asn1.SEQUENCE {
		return cryptoalg.EncodingUnspecified
	}

	first, rest, err := ReadTLV(outer.Value)
	if err != nil {
		return cryptoalg.EncodingUnspecified
	}
	second, _, err := ReadTLV(rest)
	if err != nil {
		return cryptoalg.EncodingUnspecified
	}

	switch {
	case first.Tag == asn1.INTEGER && second.Tag == asn1.SEQUENCE:
		return cryptoalg.EncodingPKCS8
	case first.Tag == asn1.INTEGER && second.Tag == asn1.INTEGER:
		return cryptoalg.EncodingPKCS1
	case first.Tag == asn1.SEQUENCE && second.Tag == asn1.BIT_STRING:
		return cryptoalg.EncodingSPKI
	default:
		return cryptoalg.EncodingUnspecified
	}
}

// checkRSAPrivateKeyShape requires a single SEQUENCE whose first element is an INTEGER.
// The key material itself is validated by the parser that consumes it.
func checkRSAPrivateKeyShape(der []byte) error {
	input := cryptobyte.String(der)

	var body cryptobyte.String
	if !input.ReadASN1(&body, asn1.SEQUENCE) || !input.Empty() {
		return fmt.Errorf("RSA private key is not a single DER SEQUENCE: %w", cryptoalg.ErrKeyImport)
	}
	if !body.PeekASN1Tag(asn1.INTEGER) {
		return fmt.Errorf("RSA private key does not start with a version INTEGER: %w", cryptoalg.ErrKeyImport)
	}
	return nil
}

// Convert re-encodes an RSA private key as target, which must be EncodingPKCS1 or EncodingPKCS8.
// The source encoding is detected; a key already in the target encoding is returned as a copy.
func Convert(der []byte, target cryptoalg.KeyEncoding) ([]byte, error) {
	if target != cryptoalg.EncodingPKCS1 && target != cryptoalg.EncodingPKCS8 {
		return nil, fmt.Errorf("cannot convert a private key to %s: %w", target, cryptoalg.ErrKeyImport)
	}

	source := Detect(der)
	switch {
	case source == target:
		return append([]byte(nil), der...), nil
	case source == cryptoalg.EncodingPKCS1:
		return PKCS1ToPKCS8(der)
	case source == cryptoalg.EncodingPKCS8:
		return PKCS8ToPKCS1(der)
	default:
		return nil, fmt.Errorf("unrecognized private key encoding %s: %w", source, cryptoalg.ErrKeyImport)
	}
}

// ParseEncoding maps "pkcs1" and "pkcs8" (any case, with or without '#') to a KeyEncoding.
func ParseEncoding(name string) (cryptoalg.KeyEncoding, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "#", "")) {
	case "pkcs1":
		return cryptoalg.EncodingPKCS1, nil
	case "pkcs8":
		return cryptoalg.EncodingPKCS8, nil
	case "spki":
		return cryptoalg.EncodingSPKI, nil
	default:
		return cryptoalg.EncodingUnspecified, fmt.Errorf("unknown key encoding %q", name)
	}
}
