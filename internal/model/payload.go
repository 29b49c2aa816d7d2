package model

import (
	"net/url"
	"sort"

	"github.com/deppfellow/newsletter-api/internal/validation"
)

// ListNewsletterPayload carries no input; it exists so listing goes
// through the same bind and validate pipeline as every other route.
type ListNewsletterPayload struct{}

func (p *ListNewsletterPayload) Validate() error {
	return nil
}

// CreateNewsletterPayload is the form body of POST /newsletters.
// Both fields must be present but may be empty.
type CreateNewsletterPayload struct {
	Title *string `validate:"required"`
	Body  *string `validate:"required"`
}

func (p *CreateNewsletterPayload) BindForm(values url.Values) error {
	p.Title = formValue(values, "title")
	p.Body = formValue(values, "body")
	return nil
}

func (p *CreateNewsletterPayload) Validate() error {
	return validate.Struct(p)
}

// Newsletter builds the record to insert. Call only after Validate.
func (p *CreateNewsletterPayload) Newsletter() Newsletter {
	return Newsletter{Title: *p.Title, Body: *p.Body}
}

// GetNewsletterPayload addresses a single newsletter by id.
type GetNewsletterPayload struct {
	ID int `param:"id"`
}

func (p *GetNewsletterPayload) Validate() error {
	return nil
}

// DeleteNewsletterPayload addresses the newsletter to delete.
type DeleteNewsletterPayload struct {
	ID int `param:"id"`
}

func (p *DeleteNewsletterPayload) Validate() error {
	return nil
}

// UpdateNewsletterPayload is the form body of PATCH /newsletters/:id.
// Any subset of the writable fields may be sent.
type UpdateNewsletterPayload struct {
	ID      int `param:"id"`
	Changes map[string]string

	unknown []string
}

func (p *UpdateNewsletterPayload) BindForm(values url.Values) error {
	p.Changes = make(map[string]string, len(values))
	p.unknown = nil

	for field := range values {
		if IsWritableField(field) {
			p.Changes[field] = values.Get(field)
			continue
		}
		p.unknown = append(p.unknown, field)
	}
	sort.Strings(p.unknown)

	return nil
}

func (p *UpdateNewsletterPayload) Validate() error {
	if len(p.unknown) == 0 {
		return nil
	}

	errs := make(validation.CustomValidationErrors, 0, len(p.unknown))
	for _, field := range p.unknown {
		errs = append(errs, validation.CustomValidationError{
			Field:   field,
			Message: "is not a writable field",
		})
	}
	return errs
}

func formValue(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	value := values.Get(key)
	return &value
}
