// Package forms validates user input before it is submitted to the
// API: values are trimmed, required and minimum-length rules run per
// field, and submission is blocked while invalid or already saving.
package forms

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field declares one input and its rules. Label is the human name used
// in error messages.
type Field struct {
	Name     string
	Label    string
	Required bool
	MinLen   int
}

func (f Field) rules() []validation.Rule {
	var rules []validation.Rule
	if f.Required {
		rules = append(rules, validation.Required.Error(f.Label+" is required"))
	}
	if f.MinLen > 0 {
		rules = append(rules, validation.Length(f.MinLen, 0).
			Error(fmt.Sprintf("%s must be at least %d characters", f.Label, f.MinLen)))
	}
	return rules
}

// Form holds the current values and per-field errors of one edit form.
type Form struct {
	fields  []Field
	values  map[string]string
	errors  map[string]string
	loading bool
}

func New(fields ...Field) *Form {
	return &Form{
		fields: fields,
		values: make(map[string]string),
		errors: make(map[string]string),
	}
}

// Set updates one field's value and clears its error, so a user typing
// into an invalid field sees the message go away.
func (f *Form) Set(name, value string) {
	f.values[name] = value
	delete(f.errors, name)
}

// Value returns the raw (untrimmed) value of a field.
func (f *Form) Value(name string) string {
	return f.values[name]
}

// Error returns the current error message for a field, empty when none.
func (f *Form) Error(name string) string {
	return f.errors[name]
}

// SetLoading marks the form as saving; Submit refuses while set.
func (f *Form) SetLoading(loading bool) {
	f.loading = loading
}

func (f *Form) Loading() bool {
	return f.loading
}

// Validate runs every field's rules against the trimmed values and
// records the first failure per field. Returns true when all pass.
func (f *Form) Validate() bool {
	f.errors = make(map[string]string)
	for _, field := range f.fields {
		value := strings.TrimSpace(f.values[field.Name])
		if err := validation.Validate(value, field.rules()...); err != nil {
			f.errors[field.Name] = err.Error()
		}
	}
	return len(f.errors) == 0
}

// Values returns the trimmed values of every declared field.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		out[field.Name] = strings.TrimSpace(f.values[field.Name])
	}
	return out
}

// Submit validates and, when valid and not already saving, hands the
// trimmed values to fn. The bool reports whether fn ran; the error is
// fn's result.
func (f *Form) Submit(fn func(values map[string]string) error) (bool, error) {
	if f.loading || !f.Validate() {
		return false, nil
	}

	f.loading = true
	defer func() { f.loading = false }()

	return true, fn(f.Values())
}

// AuthorForm declares the author edit form.
func AuthorForm() *Form {
	return New(
		Field{Name: "first_name", Label: "First name", Required: true, MinLen: 2},
		Field{Name: "last_name", Label: "Last name", Required: true, MinLen: 2},
	)
}

// ArticleForm declares the article edit form.
func ArticleForm() *Form {
	return New(
		Field{Name: "title", Label: "Title", Required: true, MinLen: 5},
		Field{Name: "content", Label: "Content", Required: true, MinLen: 10},
	)
}

// RegionForm declares the region edit form.
func RegionForm() *Form {
	return New(
		Field{Name: "code", Label: "Code", Required: true, MinLen: 2},
		Field{Name: "name", Label: "Name", Required: true, MinLen: 2},
	)
}
