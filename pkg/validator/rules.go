package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Required validates that value is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// MinLen validates that value has at least n runes.
func MinLen(field, value string, n int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) >= n },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d characters long", n)},
	}
}

// MaxLen validates that value has at most n runes.
func MaxLen(field, value string, n int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= n },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters long", n)},
	}
}

// Min validates that value >= bound.
func Min[T Numeric](field string, value, bound T) Rule {
	return Rule{
		Check: func() bool { return value >= bound },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %v", bound)},
	}
}

// Max validates that value <= bound.
func Max[T Numeric](field string, value, bound T) Rule {
	return Rule{
		Check: func() bool { return value <= bound },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %v", bound)},
	}
}

// Between validates that value lies in the inclusive range [lo, hi].
func Between[T Numeric](field string, value, lo, hi T) Rule {
	return Rule{
		Check: func() bool { return value >= lo && value <= hi },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be between %v and %v", lo, hi)},
	}
}

// OneOf validates that value equals one of the allowed values.
func OneOf[T comparable](field string, value T, allowed ...T) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be one of the allowed values, got %v", value)},
	}
}

// Matches validates value against a compiled regular expression.
func Matches(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool { return re != nil && re.MatchString(value) },
		Error: ValidationError{Field: field, Message: "has invalid format"},
	}
}

// Email validates that value looks like an email address.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool { return emailRe.MatchString(value) },
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// ValidUUID validates that value parses as a UUID and is not the nil UUID.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			id, err := uuid.Parse(value)
			return err == nil && id != uuid.Nil
		},
		Error: ValidationError{Field: field, Message: "must be a valid UUID"},
	}
}
