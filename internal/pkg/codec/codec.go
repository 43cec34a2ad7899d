package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
)

// Base64Encode encodes data using the standard alphabet with padding.
func Base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Base64Decode decodes standard padded Base64.
func Base64Decode(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w: %w", cryptoalg.ErrEncoding, err)
	}
	return data, nil
}

// HexEncode encodes data as lowercase hex without separators.
func HexEncode(data []byte) string {
	return hex.EncodeToString(data)
}

// HexDecode decodes hex text. Upper and lower case digits are accepted.
func HexDecode(text string) ([]byte, error) {
	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex: %w: %w", cryptoalg.ErrEncoding, err)
	}
	return data, nil
}

// UTF8Encode returns the UTF-8 bytes of text.
func UTF8Encode(text string) []byte {
	return []byte(text)
}

// UTF8Decode interprets data as UTF-8 text.
func UTF8Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to decode utf-8: %w", cryptoalg.ErrEncoding)
	}
	return string(data), nil
}

// RawEncode maps every byte to the rune with the same value.
func RawEncode(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 2)
	for _, b := range data {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

// RawDecode is the inverse of RawEncode. Runes above 0xFF are rejected.
func RawDecode(text string) ([]byte, error) {
	out := make([]byte, 0, len(text))
	for i, r := range text {
		if r > 0xFF {
			return nil, fmt.Errorf("failed to decode byte string at offset %d: %w", i, cryptoalg.ErrEncoding)
		}
		out = append(out, byte(r))
	}
	return out, nil
}
