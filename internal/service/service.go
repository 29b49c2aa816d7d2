// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers pass in
// validated input, services run the operation (inside a transaction when
// it writes) and translate missing records into API errors.
package service
