package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen validates that value is at least min bytes long.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLen validates that value is at most max bytes long.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Contains validates that value contains substr.
func Contains(field, value, substr string) Rule {
	return Rule{
		Check: func() bool {
			return strings.Contains(value, substr)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain %q", substr),
			TranslationKey: "validation.contains",
			TranslationValues: map[string]any{
				"field":  field,
				"substr": substr,
			},
		},
	}
}

// NotContains validates that value does not contain substr.
func NotContains(field, value, substr string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.Contains(value, substr)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not contain %q", substr),
			TranslationKey: "validation.not_contains",
			TranslationValues: map[string]any{
				"field":  field,
				"substr": substr,
			},
		},
	}
}

// Matches validates value against re. desc names the expected shape in the message.
func Matches(field, value string, re *regexp.Regexp, desc string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be " + desc,
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": re.String(),
			},
		},
	}
}

// ValidEmail validates an address using RFC 5322 parsing plus the usual
// web constraints: bare address, dotted domain, no empty labels.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" || strings.Contains(domain, "@") {
				return false
			}

			if !strings.Contains(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidUUID validates canonical hyphenated UUID strings.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			// uuid.Parse also accepts urn: and braced forms
			if len(value) != 36 {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid UUID",
			TranslationKey: "validation.uuid",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
