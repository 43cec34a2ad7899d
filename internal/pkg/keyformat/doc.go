// Package keyformat converts RSA private keys between the bare PKCS#1 RSAPrivateKey
// encoding and the PKCS#8 PrivateKeyInfo wrapper.
//
// Only the handful of DER elements both encodings consist of are read or written.
// Lengths are always emitted in their minimal form and accepted in either short or long form.
package keyformat
