// Package v1 exposes the interop primitives and the key pair store over HTTP with gin.
package v1
