// Package logger provides structured logging for the application.
//
// It configures a log/slog JSON handler at the configured level and carries
// request-scoped loggers and trace ids through context.Context.
package logger
