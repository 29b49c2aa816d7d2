// Package validation binds request data into payload structs and turns
// validation failures into field-level API errors.
//
// Rules live on the payloads as validator struct tags, or in custom
// Validate methods returning CustomValidationErrors.
package validation
