// Package normalize canonicalizes submitted form values before validation.
//
// Values are trimmed. Role and Status are matched case-insensitively against
// the known values and rewritten to their canonical spelling; anything
// unrecognized is returned trimmed but otherwise untouched so the validation
// rule table can reject it.
package normalize

import (
	"strconv"
	"strings"

	"github.com/dalemusser/bankadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// Username trims surrounding whitespace.
func Username(s string) string {
	return strings.TrimSpace(s)
}

// Email trims surrounding whitespace. Case is preserved.
func Email(s string) string {
	return strings.TrimSpace(s)
}

// Phone trims surrounding whitespace.
func Phone(s string) string {
	return strings.TrimSpace(s)
}

// Role maps any casing of a known role to its canonical value.
func Role(s string) models.Role {
	s = strings.TrimSpace(s)
	folded := text.Fold(s)
	for _, r := range models.Roles() {
		if text.Fold(string(r)) == folded {
			return r
		}
	}
	return models.Role(s)
}

// Status maps any casing of a known status to its canonical value.
func Status(s string) models.Status {
	s = strings.TrimSpace(s)
	folded := text.Fold(s)
	for _, st := range models.Statuses() {
		if text.Fold(string(st)) == folded {
			return st
		}
	}
	return models.Status(s)
}

// ID parses a positive integer record id. ok is false for anything else.
func ID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
