package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
)

// Minimal internal validator to avoid external dependency. Supports:
// - required
// - usernameok (letters, numbers, underscore, hyphen, 3-50 chars)
// - pwdmin (min length 6, only checked when non-empty)
// - emailok (loose email shape, only checked when non-empty)

var (
	reUsername = regexp.MustCompile(`^[A-Za-z0-9_\-]{3,50}$`)
	reEmail    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateStruct inspects struct tags `validate:"..."` and returns the first error encountered.
func ValidateStruct(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.New("ValidateStruct expects a struct or pointer to struct")
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}
		parts := strings.Split(tag, ",")
		fv := v.Field(i)
		var sval string
		if fv.IsValid() && fv.Kind() == reflect.String {
			sval = fv.String()
		}
		for _, p := range parts {
			p = strings.TrimSpace(p)
			switch p {
			case "required":
				if sval == "" {
					return errors.New(field.Name + " is required")
				}
			case "usernameok":
				if sval != "" && !reUsername.MatchString(sval) {
					return errors.New(field.Name + " contains invalid characters")
				}
			case "pwdmin":
				if sval != "" && len(sval) < 6 {
					return errors.New(field.Name + " must be at least 6 characters")
				}
			case "emailok":
				if sval != "" && !reEmail.MatchString(sval) {
					return errors.New(field.Name + " is not a valid email address")
				}
			}
		}
	}
	return nil
}
