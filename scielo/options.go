// Package scielo composes the resolvers into the public entities Journal,
// Issue, Article and Citation. Entities wrap the raw namespaces of a
// document and compute values on access; sub entities (the journal and
// issue of an article, its citations) are built once on first access and
// cached for the lifetime of the parent. Replacing a namespace of the
// document after that first access does not affect the cached entity.
package scielo

import (
	"strings"

	"github.com/miku/isiskit/legend"
	"github.com/miku/isiskit/reftable"
	"github.com/miku/isiskit/resolve"
)

// DefaultLanguageFormat is used, when no format is given.
const DefaultLanguageFormat = resolve.ISO6392

type settings struct {
	tables     *reftable.Tables
	formatName string
	format     resolve.LanguageFormat
	formatter  legend.Formatter
}

// Option configures an entity.
type Option func(*settings)

// WithLanguageFormat sets the language representation: "iso 639-2",
// "iso 639-1" or "raw". Other values fail construction.
func WithLanguageFormat(format string) Option {
	return func(s *settings) {
		s.formatName = format
	}
}

// WithTables sets the reference tables, reftable.Default otherwise.
func WithTables(t *reftable.Tables) Option {
	return func(s *settings) {
		if t != nil {
			s.tables = t
		}
	}
}

// WithFormatter sets the bibliographic legend formatter.
func WithFormatter(f legend.Formatter) Option {
	return func(s *settings) {
		if f != nil {
			s.formatter = f
		}
	}
}

func newSettings(opts []Option) (*settings, error) {
	s := &settings{
		formatName: string(DefaultLanguageFormat),
		formatter:  legend.Default{},
	}
	for _, opt := range opts {
		opt(s)
	}
	format, err := resolve.ParseLanguageFormat(s.formatName)
	if err != nil {
		return nil, err
	}
	s.format = format
	if s.tables == nil {
		s.tables = reftable.Default()
	}
	return s, nil
}

// language resolves a language code as found in records, where case varies
// between "pt", "PT" and "Pt".
func (s *settings) language(code string) string {
	return resolve.Language(s.tables, strings.ToLower(strings.TrimSpace(code)), s.format)
}
