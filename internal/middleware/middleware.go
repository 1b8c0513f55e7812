// Package middleware provides the echo middleware stack: request ids,
// request-scoped logging, New Relic tracing, CORS, recovery, secure headers
// and the global error handler.
package middleware
