package resolve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/miku/isiskit/isis"
)

// ErrInvalidDate is returned for dates without a four digit year.
var ErrInvalidDate = errors.New("invalid date")

// DateError reports an ISIS date that lacks a usable year. It matches both
// ErrInvalidDate and isis.ErrMissingRequiredField.
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date: no year in %q", e.Value)
}

// Is implements errors.Is support.
func (e *DateError) Is(target error) bool {
	return target == ErrInvalidDate || target == isis.ErrMissingRequiredField
}

// Date turns an ISIS date (YYYYMMDD, zero filled) into YYYY, YYYY-MM or
// YYYY-MM-DD. A zero or out of range month drops month and day, a zero or
// out of range day drops the day.
func Date(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || !isDigits(s[:4]) {
		return "", &DateError{Value: s}
	}
	var b strings.Builder
	b.WriteString(s[:4])
	if len(s) < 6 {
		return b.String(), nil
	}
	month, err := strconv.Atoi(s[4:6])
	if err != nil || month < 1 || month > 12 {
		return b.String(), nil
	}
	fmt.Fprintf(&b, "-%02d", month)
	if len(s) < 8 {
		return b.String(), nil
	}
	day, err := strconv.Atoi(s[6:8])
	if err != nil || day < 1 || day > 31 {
		return b.String(), nil
	}
	fmt.Fprintf(&b, "-%02d", day)
	return b.String(), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
