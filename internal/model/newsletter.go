package model

import "sort"

// Newsletter is a single stored newsletter record.
type Newsletter struct {
	ID    int    `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	Body  string `json:"body" db:"body"`
}

// writableFields maps each client-writable field name to its setter.
var writableFields = map[string]func(n *Newsletter, value string){
	"title": func(n *Newsletter, value string) { n.Title = value },
	"body":  func(n *Newsletter, value string) { n.Body = value },
}

// IsWritableField reports whether clients may set field on a newsletter.
func IsWritableField(field string) bool {
	_, ok := writableFields[field]
	return ok
}

// WritableFields returns the writable field names in sorted order.
func WritableFields() []string {
	fields := make([]string, 0, len(writableFields))
	for field := range writableFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Apply sets every field in changes on n. It reports false, leaving n
// untouched, when changes names a field that is not writable.
func (n *Newsletter) Apply(changes map[string]string) bool {
	for field := range changes {
		if !IsWritableField(field) {
			return false
		}
	}

	for field, value := range changes {
		writableFields[field](n, value)
	}
	return true
}
