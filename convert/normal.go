package convert

import (
	"regexp"
	"strings"
	"unicode"
)

var doiPattern = regexp.MustCompile(`^10\.\d{4,}/\S+$`)

// doiPrefixes are trimmed in order; SciELO records carry DOI values as
// bare strings, with a "doi:" label or as resolver links.
var doiPrefixes = []string{
	"doi:",
	"http://",
	"https://",
	"dx.doi.org/",
	"doi.org/",
}

// cleanDOI returns a lowercase DOI or the empty string, if the value cannot
// be used as a fatcat external identifier.
func cleanDOI(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, prefix := range doiPrefixes {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(s[len(prefix):])
		}
	}
	if s == "" || strings.ContainsFunc(s, func(r rune) bool {
		return r > unicode.MaxASCII || unicode.IsSpace(r)
	}) {
		return ""
	}
	// 10.1037//0002-9432.72.1.50 is a known publisher typo.
	if strings.HasPrefix(s, "10.1037//") {
		s = "10.1037/" + s[len("10.1037//"):]
	}
	if !doiPattern.MatchString(s) {
		return ""
	}
	return s
}
