// Package errs defines the error vocabulary of the service.
//
// Domain sentinels (ErrNotFound, ErrUsernameTaken, ...) and ValidationError are
// returned by repositories and services. HTTPError is the JSON shape written to
// API clients, built by the handler layer from those domain errors.
package errs
