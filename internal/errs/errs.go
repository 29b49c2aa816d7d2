// Package errs defines the error shapes returned to API clients.
//
// Every failure leaving the service is an *HTTPError carrying a machine
// readable code, a human readable message, the HTTP status and optional
// field-level validation errors.
package errs
