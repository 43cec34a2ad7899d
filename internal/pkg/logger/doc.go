// Package logger provides the structured logger shared by processors, repositories, services and handlers.
package logger
