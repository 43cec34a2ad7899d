// Package codec converts between bytes and their text representations: Base64 (standard alphabet, padded),
// lowercase Hex, UTF-8 and the raw byte-string form where every byte becomes one rune in the range 0x00-0xFF.
//
// For every function pair decode(encode(x)) == x holds, including the empty input which encodes to "".
package codec
