// Package errs defines the error vocabulary shared across the service.
//
// Errors come in three layers:
//   - DBError: produced by the repositories. It is either an invalid
//     identifier (malformed UUID or a dangling foreign key) or any other
//     storage failure.
//   - HandlerError: produced by the service layer. It is either a bad
//     request or an internal error carrying a fixed, non-leaking message.
//   - HTTPError: the JSON shape returned to API clients.
package errs
