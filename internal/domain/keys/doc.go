// Package keys defines the stored RSA key pair entity and the contracts of its repository and service.
package keys
