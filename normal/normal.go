// Package normal contains text helpers: HTML entity decoding, tag removal,
// diacritic folding and a small normalizer pipeline used to compare free
// form location strings.
package normal

import (
	"html"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Pipeline struct {
	Normalizer []Normalizer
}

func (p *Pipeline) Normalize(s string) string {
	for _, n := range p.Normalizer {
		s = n.Normalize(s)
	}
	return s
}

type Normalizer interface {
	Normalize(string) string
}

// NormalizerFunc adapts a plain function.
type NormalizerFunc func(string) string

func (f NormalizerFunc) Normalize(s string) string { return f(s) }

type UpperNormalizer struct{}

func (s *UpperNormalizer) Normalize(v string) string {
	return strings.ToUpper(v)
}

// DiacriticsNormalizer removes combining marks, "São" becomes "Sao".
type DiacriticsNormalizer struct{}

func (s *DiacriticsNormalizer) Normalize(v string) string {
	return RemoveDiacritics(v)
}

// LocationCharsNormalizer keeps letters, space and hyphen only.
type LocationCharsNormalizer struct{}

func (s *LocationCharsNormalizer) Normalize(v string) string {
	var b strings.Builder
	for _, c := range v {
		if unicode.IsLetter(c) || c == ' ' || c == '-' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// SpaceNormalizer trims and collapses runs of whitespace.
type SpaceNormalizer struct{}

func (s *SpaceNormalizer) Normalize(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// Location is the pipeline used to compare city, state and country names.
var Location = &Pipeline{Normalizer: []Normalizer{
	&DiacriticsNormalizer{},
	&UpperNormalizer{},
	&LocationCharsNormalizer{},
	&SpaceNormalizer{},
}}

// RemoveDiacritics decomposes a string and drops nonspacing marks.
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// HTMLDecode resolves HTML entities, "S&atilde;o" becomes "São".
func HTMLDecode(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return html.UnescapeString(s)
}

// StripTags returns the text content of an HTML fragment.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}

// Links returns the href attributes of all anchors in an HTML fragment.
func Links(s string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil
	}
	var result []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok {
			result = append(result, strings.TrimSpace(href))
		}
	})
	return result
}

// Clean decodes entities, removes markup and collapses whitespace, which is
// what titles and abstracts need.
func Clean(s string) string {
	return strings.Join(strings.Fields(StripTags(HTMLDecode(ReplaceNewlineAndTab(s)))), " ")
}

func ReplaceNewlineAndTab(s string) string {
	var sb strings.Builder
	for _, c := range s {
		if c == '\n' || c == '\t' {
			sb.WriteString(" ")
		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
