package checkout

import (
	"sort"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorSet maps a form field to the single message describing its violation.
// Valid fields have no key.
type ErrorSet map[string]string

// add keeps the first message recorded for a field.
func (e ErrorSet) add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

func (e ErrorSet) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Fields returns the violated field names in sorted order.
func (e ErrorSet) Fields() []string {
	out := make([]string, 0, len(e))
	for f := range e {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func (e ErrorSet) List() []FieldError {
	out := make([]FieldError, 0, len(e))
	for _, f := range e.Fields() {
		out = append(out, FieldError{Field: f, Message: e[f]})
	}
	return out
}

func (e ErrorSet) Error() string {
	var b strings.Builder
	for i, fe := range e.List() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}
