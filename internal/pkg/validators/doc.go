// Package validators holds custom go-playground validator tags.
package validators
