package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/newsletter-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConvertPgError normalizes a raw pgconn error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// errorCode builds <ENTITY>_<ACTION>, e.g. NEWSLETTER_REQUIRED. Errors that
// name no table, which is the norm for data exceptions, use RECORD.
func errorCode(sqlErr *Error) string {
	entity := "RECORD"
	if sqlErr.TableName != "" {
		entity = strings.ToUpper(singular(sqlErr.TableName))
	}

	action := "ERROR"
	switch sqlErr.Code {
	case NotNullViolation:
		action = "REQUIRED"
	case DataException:
		action = "INVALID"
	}

	return entity + "_" + action
}

func singular(name string) string {
	if len(name) > 1 && strings.HasSuffix(strings.ToLower(name), "s") {
		return name[:len(name)-1]
	}
	return name
}

// humanizeText turns "first_name" into "First Name".
func humanizeText(text string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a storage error into an *errs.HTTPError.
//
// HTTP errors pass through untouched. Rejected input (missing column value,
// text the database cannot store) becomes a 400, a missing row a 404, and
// anything else a 500 with no details.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		code := errorCode(sqlErr)

		switch sqlErr.Code {
		case NotNullViolation:
			field := "field"
			var fieldErrors []errs.FieldError
			if sqlErr.ColumnName != "" {
				field = humanizeText(sqlErr.ColumnName)
				fieldErrors = []errs.FieldError{{Field: strings.ToLower(sqlErr.ColumnName), Error: "is required"}}
			}
			return errs.NewBadRequestError(fmt.Sprintf("The %s is required", field), true, &code, fieldErrors, nil)

		case DataException:
			return errs.NewBadRequestError("One or more values cannot be stored", true, &code, nil, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
