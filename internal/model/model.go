// Package model holds the newsletter entity and the request payloads the
// HTTP layer binds into.
package model

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()
