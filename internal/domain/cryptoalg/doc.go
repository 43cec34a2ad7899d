// Package cryptoalg defines the core interfaces and structures for the interoperable cryptographic primitives:
// fixed-IV AES, RSA with PKCS#1 v1.5 padding, MD5 hashing, and the private key encodings they accept.
package cryptoalg
