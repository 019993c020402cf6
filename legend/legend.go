// Package legend renders bibliographic legends, short citation strings like
// "Rev. Saúde Pública, 2012, vol. 46, no. 1, pp. 229-232".
package legend

import (
	"html"
	"strings"
)

// Legend names.
const (
	Descriptive              = "descriptive"
	DescriptiveShort         = "descriptive_short"
	DescriptiveVeryShort     = "descriptive_very_short"
	DescriptiveHTML          = "descriptive_html"
	DescriptiveShortHTML     = "descriptive_short_html"
	DescriptiveVeryShortHTML = "descriptive_very_short_html"
)

// Input carries the normalized scalars a legend is built from.
type Input struct {
	JournalTitle    string
	AbbrevTitle     string
	PublicationDate string // YYYY, YYYY-MM or YYYY-MM-DD
	Volume          string
	Number          string
	StartPage       string
	EndPage         string
	ELocation       string
	SupplementLabel string
	Language        string // ISO 639-1, selects labels
}

// Formatter turns an input into named legends.
type Formatter interface {
	Format(in Input) map[string]string
}

type labels struct {
	volume, number, pages, page, supplement string
}

var labelSets = map[string]labels{
	"en": {"vol.", "no.", "pp.", "p.", "suppl."},
	"pt": {"v.", "n.", "p.", "p.", "supl."},
	"es": {"vol.", "n.", "pp.", "p.", "supl."},
}

// Default renders legends with English, Portuguese or Spanish labels,
// English for any other language.
type Default struct{}

func (Default) Format(in Input) map[string]string {
	l, ok := labelSets[in.Language]
	if !ok {
		l = labelSets["en"]
	}
	var (
		title = firstNonEmpty(in.AbbrevTitle, in.JournalTitle)
		year  = in.PublicationDate
	)
	if len(year) > 4 {
		year = year[:4]
	}
	// descriptive: Title, 2012, vol. 46, no. 1, suppl. 2, pp. 229-232
	var parts []string
	add := func(prefix, v string) {
		if v != "" {
			parts = append(parts, strings.TrimSpace(prefix+" "+v))
		}
	}
	add("", year)
	add(l.volume, in.Volume)
	add(l.number, in.Number)
	add(l.supplement, in.SupplementLabel)
	switch pages := pageRange(in); {
	case pages == "":
	case strings.Contains(pages, "-"):
		add(l.pages, pages)
	default:
		add(l.page, pages)
	}
	descriptive := join(title, parts)
	// descriptive short: Title, 46(1):229-232, 2012
	var issue strings.Builder
	issue.WriteString(in.Volume)
	if in.Number != "" || in.SupplementLabel != "" {
		issue.WriteString("(")
		issue.WriteString(strings.TrimSpace(in.Number + " " + suppl(l, in.SupplementLabel)))
		issue.WriteString(")")
	}
	if pages := pageRange(in); pages != "" {
		issue.WriteString(":")
		issue.WriteString(pages)
	}
	var short []string
	if issue.Len() > 0 {
		short = append(short, issue.String())
	}
	if year != "" {
		short = append(short, year)
	}
	descriptiveShort := join(title, short)
	// descriptive very short: Title, 2012, 46(1)
	var veryShort []string
	if year != "" {
		veryShort = append(veryShort, year)
	}
	if in.Volume != "" || in.Number != "" {
		v := in.Volume
		if in.Number != "" {
			v += "(" + in.Number + ")"
		}
		veryShort = append(veryShort, v)
	}
	descriptiveVeryShort := join(title, veryShort)
	return map[string]string{
		Descriptive:              descriptive,
		DescriptiveShort:         descriptiveShort,
		DescriptiveVeryShort:     descriptiveVeryShort,
		DescriptiveHTML:          emphasize(title, descriptive),
		DescriptiveShortHTML:     emphasize(title, descriptiveShort),
		DescriptiveVeryShortHTML: emphasize(title, descriptiveVeryShort),
	}
}

func suppl(l labels, s string) string {
	if s == "" {
		return ""
	}
	return l.supplement + " " + s
}

func pageRange(in Input) string {
	switch {
	case in.ELocation != "":
		return in.ELocation
	case in.StartPage != "" && in.EndPage != "" && in.StartPage != in.EndPage:
		return in.StartPage + "-" + in.EndPage
	default:
		return firstNonEmpty(in.StartPage, in.EndPage)
	}
}

func join(title string, parts []string) string {
	if title == "" {
		return strings.Join(parts, ", ")
	}
	return strings.Join(append([]string{title}, parts...), ", ")
}

// emphasize escapes the legend and wraps the leading title in <em>.
func emphasize(title, s string) string {
	if title == "" || !strings.HasPrefix(s, title) {
		return html.EscapeString(s)
	}
	return "<em>" + html.EscapeString(title) + "</em>" + html.EscapeString(s[len(title):])
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}
