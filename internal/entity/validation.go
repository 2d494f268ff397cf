package entity

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ValidationErrors maps a field name to the list of messages for that field.
// It is returned by the entities' Validate methods and rendered as the body
// of a 422 response.
type ValidationErrors map[string][]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

func (v ValidationErrors) add(field, msg string) {
	v[field] = append(v[field], msg)
}

// orNil lets Validate methods return a plain nil error when the record is
// clean, so callers can test err != nil without caring about typed nils.
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

var slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

func checkRequired(v ValidationErrors, field, value string) {
	if value == "" {
		v.add(field, "this field cannot be blank")
	}
}

func checkMaxLen(v ValidationErrors, field, value string, max int) {
	if len([]rune(value)) > max {
		v.add(field, fmt.Sprintf("ensure this value has at most %d characters", max))
	}
}

func checkSlug(v ValidationErrors, field, value string) {
	if value != "" && !slugRe.MatchString(value) {
		v.add(field, "enter a valid slug consisting of letters, numbers, underscores or hyphens")
	}
}
