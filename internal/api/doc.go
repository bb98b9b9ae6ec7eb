// Package api exposes the read-aloud practice service over HTTP. It decodes
// and validates JSON and multipart requests, calls the application services,
// and maps their errors to status codes and client-safe messages.
//
// Public routes are sign-up, sign-in, reading the text catalogue and /health.
// Everything else under /api requires a bearer token checked by
// middleware.AuthMiddleware.
package api
