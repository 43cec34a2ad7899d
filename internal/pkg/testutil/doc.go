// Package testutil provides helpers and interop fixtures shared by tests.
package testutil
