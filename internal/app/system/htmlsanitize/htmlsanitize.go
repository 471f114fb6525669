// Package htmlsanitize renders short status messages as safe HTML.
//
// Messages are built from a trusted format string that may use a little
// inline markup (<strong>, <em>, <br>) and untrusted arguments such as
// usernames. Arguments are escaped before formatting, and the result is run
// through a bluemonday policy that keeps only the inline tags.
package htmlsanitize

import (
	"fmt"
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func messagePolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("strong", "em", "br", "code")
		policy = p
	})
	return policy
}

// Sanitize strips everything but inline emphasis from s.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return messagePolicy().Sanitize(s)
}

// Message formats a status message. args are HTML-escaped before they are
// substituted into format.
//
//	htmlsanitize.Message("User <strong>%s</strong> added.", u.Username)
func Message(format string, args ...any) template.HTML {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = template.HTMLEscapeString(fmt.Sprint(a))
	}
	return template.HTML(Sanitize(fmt.Sprintf(format, escaped...)))
}
