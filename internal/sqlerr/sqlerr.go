// Package sqlerr translates PostgreSQL driver errors into API errors.
//
// Raw SQLSTATE codes are mapped onto a small set of categories, and each
// category becomes an errs.HTTPError with a stable machine code such as
// NEWSLETTER_REQUIRED and a message that is safe to show to clients.
package sqlerr

import (
	"fmt"
	"strings"
)

// Code is the category of a database error.
type Code string

const (
	// Other covers every SQLSTATE without a dedicated category.
	Other Code = "other"

	NotNullViolation Code = "not_null_violation"

	// DataException is SQLSTATE class 22, e.g. text PostgreSQL cannot
	// store such as a NUL byte or invalid UTF-8.
	DataException Code = "data_exception"
)

// Severity mirrors the severity field reported by PostgreSQL.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalized PostgreSQL error.
type Error struct {
	Code     Code
	Severity Severity

	// DatabaseCode is the raw SQLSTATE, e.g. "23502".
	DatabaseCode string
	Message      string

	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", e.Severity, e.Message, e.DatabaseCode)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE onto a Code.
func MapCode(sqlState string) Code {
	switch {
	case sqlState == "23502":
		return NotNullViolation
	case strings.HasPrefix(sqlState, "22"):
		return DataException
	default:
		return Other
	}
}

// MapSeverity maps the severity string onto a Severity. Unknown values
// are treated as errors.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityFatal, SeverityPanic, SeverityWarning, SeverityNotice,
		SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}
