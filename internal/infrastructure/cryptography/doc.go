// Package cryptography implements the processors declared in the cryptoalg domain package
// on top of the Go standard crypto primitives.
package cryptography
