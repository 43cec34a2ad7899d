// Package app wires the domain processors and repositories into the application services
// used by the REST API.
package app
