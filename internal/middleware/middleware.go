// Package middleware holds the echo middleware applied to every route and
// the global error handler that shapes error responses.
package middleware
