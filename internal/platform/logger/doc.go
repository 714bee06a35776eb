// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured logging
// with configurable log levels: human-readable text in development and JSON
// everywhere else. Loggers can be carried on a context so request-scoped
// attributes such as the trace id follow a request through the service layer.
package logger
