// Package config loads and validates the settings of the REST service and the CLI:
// logging, the key-pair database and the HTTP listener.
package config
