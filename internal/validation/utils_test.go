package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/deppfellow/newsletter-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValidator = validator.New()

type formPayload struct {
	ID    int     `param:"id"`
	Title *string `validate:"required"`
	Email string  `validate:"omitempty,email"`
	Extra []string
}

func (p *formPayload) BindForm(values url.Values) error {
	if values.Has("title") {
		title := values.Get("title")
		p.Title = &title
	}
	p.Email = values.Get("email")
	for key := range values {
		if key != "title" && key != "email" {
			p.Extra = append(p.Extra, key)
		}
	}
	return nil
}

func (p *formPayload) Validate() error {
	if len(p.Extra) > 0 {
		return CustomValidationErrors{{Field: p.Extra[0], Message: "is not allowed"}}
	}
	return testValidator.Struct(p)
}

type pathPayload struct {
	ID int `param:"id"`
}

func (p *pathPayload) Validate() error { return nil }

func newContext(method, body string, id string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/newsletters/"+id+"?title=fromquery", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/newsletters/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidateForm(t *testing.T) {
	c := newContext(http.MethodPatch, "title=Weekly&email=a@b.co", "12")

	payload := &formPayload{}
	require.NoError(t, BindAndValidate(c, payload))

	assert.Equal(t, 12, payload.ID)
	require.NotNil(t, payload.Title)
	assert.Equal(t, "Weekly", *payload.Title)
}

func TestBindAndValidateAcceptsEmptyValue(t *testing.T) {
	c := newContext(http.MethodPost, "title=", "1")

	payload := &formPayload{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "", *payload.Title)
}

func TestBindAndValidateIgnoresQueryString(t *testing.T) {
	c := newContext(http.MethodPost, "", "1")

	err := BindAndValidate(c, &formPayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, []errs.FieldError{{Field: "title", Error: "is required"}}, httpErr.Errors)
}

func TestBindAndValidateTagErrors(t *testing.T) {
	c := newContext(http.MethodPost, "title=x&email=not-an-email", "1")

	httpErr := requireHTTPError(t, BindAndValidate(c, &formPayload{}))

	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "email", Error: "must be a valid email address"}}, httpErr.Errors)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext(http.MethodPatch, "title=x&author=me", "1")

	httpErr := requireHTTPError(t, BindAndValidate(c, &formPayload{}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, []errs.FieldError{{Field: "author", Error: "is not allowed"}}, httpErr.Errors)
}

func TestBindAndValidateRejectsNonIntegerID(t *testing.T) {
	c := newContext(http.MethodGet, "", "abc")

	httpErr := requireHTTPError(t, BindAndValidate(c, &pathPayload{}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.True(t, strings.HasPrefix(httpErr.Message, "Invalid path parameter"))
}

func TestExtractValidationErrorFallback(t *testing.T) {
	msg, fields := extractValidationError(errors.New("boom"))

	assert.Equal(t, "Validation failed", msg)
	assert.Equal(t, []errs.FieldError{{Field: "request", Error: "boom"}}, fields)
}
