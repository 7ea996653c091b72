// Package handler is the HTTP layer between the router and the services.
//
// Handlers bind and validate requests through the validation package, call
// a service, and translate domain errors into errs.HTTPError values for the
// global error handler.
package handler
