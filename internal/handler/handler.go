// Package handler is the HTTP layer. Handlers bind and validate input
// through the validation package, call the service layer and write the
// response.
package handler
