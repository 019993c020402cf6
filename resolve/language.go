// Package resolve implements the reconciliation rules that pick a single
// canonical value out of the competing legacy encodings of an ISIS record.
// All functions are pure: they depend on the record, read-only tables and
// their arguments only.
package resolve

import (
	"fmt"

	"github.com/miku/isiskit/isis"
)

// LanguageFormat selects the representation of language codes.
type LanguageFormat string

const (
	ISO6392     LanguageFormat = "iso 639-2"
	ISO6391     LanguageFormat = "iso 639-1"
	RawLanguage LanguageFormat = "raw"
)

// LanguageTable is what the language resolver needs from the reference
// tables.
type LanguageTable interface {
	IsISO6391(code string) bool
	ISO6392(code string) (string, bool)
}

// ParseLanguageFormat validates a language format name.
func ParseLanguageFormat(s string) (LanguageFormat, error) {
	switch f := LanguageFormat(s); f {
	case ISO6392, ISO6391, RawLanguage:
		return f, nil
	}
	return "", &isis.ConfigError{Option: "language format", Value: s}
}

// Language maps a raw language code to the requested representation. An
// unknown code yields "#undefined <code>#" for ISO 639-1 and the code itself
// for ISO 639-2.
func Language(t LanguageTable, code string, format LanguageFormat) string {
	switch format {
	case ISO6391:
		if t.IsISO6391(code) {
			return code
		}
		return fmt.Sprintf("#undefined %s#", code)
	case ISO6392:
		if v, ok := t.ISO6392(code); ok {
			return v
		}
		return code
	default:
		return code
	}
}
