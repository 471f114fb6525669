// Package inputval evaluates declarative field rule tables.
//
// A rule table lists, per form field, the go-playground/validator tag the
// field must satisfy. Validate runs the table against a map of submitted
// values and reports every failing field with a readable message. It is a
// pure function: nothing is stored and nothing is mutated.
//
// Example:
//
//	res := inputval.Validate(inputval.AddUserRules, map[string]string{
//	    "username": "bob",
//	    "password": "secret1",
//	    "email":    "b@x.com",
//	    "phone":    "555",
//	    "role":     "User",
//	})
//	if res.HasErrors() {
//	    // render res.For("username") next to the field
//	}
package inputval

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator registers the "mailbox" tag next to the built-in ones.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || IsValidEmail(s)
	}); err != nil {
		panic(fmt.Sprintf("inputval: register mailbox: %v", err))
	}
	return v
}

const (
	maxEmailLen = 254
	maxLocalLen = 64
)

// mailboxPattern accepts local@domain where domain is one or more dot
// separated labels. A single-label domain such as localhost is allowed.
var mailboxPattern = regexp.MustCompile("^[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+(\\.[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
	"@[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// Rule binds one field to a validator tag. An empty Tag means the field is
// captured but unconstrained.
type Rule struct {
	Field string
	Label string
	Tag   string
}

// Rules is an ordered rule table.
type Rules []Rule

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Message string
}

// Result holds the outcome of Validate in rule-table order.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first message, or "" when valid.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// For returns the message for field, or "".
func (r Result) For(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Validate checks values against every rule. Missing keys validate as "".
func Validate(rules Rules, values map[string]string) Result {
	var res Result
	for _, rule := range rules {
		if rule.Tag == "" {
			continue
		}
		err := validate.Var(values[rule.Field], rule.Tag)
		if err == nil {
			continue
		}
		res.Errors = append(res.Errors, FieldError{
			Field:   rule.Field,
			Message: message(rule.Label, err),
		})
	}
	return res
}

// IsValidEmail reports whether s looks like local@domain. Surrounding space
// is ignored.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxEmailLen {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at > maxLocalLen {
		return false
	}
	return mailboxPattern.MatchString(s)
}

// message turns the first failing validator tag into a sentence.
func message(label string, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Sprintf("%s is invalid.", label)
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
	case "email", "mailbox":
		return fmt.Sprintf("%s must be a valid email address.", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}
