// Package convert turns SciELO documents into fatcat releases.
package convert

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

type Skip struct {
	err error
}

func (s Skip) Error() string {
	return s.err.Error()
}

var (
	ErrSkipNoTitle       = Skip{err: errors.New("no title")}
	ErrSkipNoPublisherID = Skip{err: errors.New("no publisher id")}

	ErrInvalidIdent = errors.New("invalid fatcat ident")
)

var whitespace = regexp.MustCompile(`\s+`)

// hashString returns a hex-encoded hash of a string.
func hashString(s string) string {
	h := sha1.New()
	_, _ = io.WriteString(h, s)
	return fmt.Sprintf("%x", h.Sum(nil))
}

func cleanTitle(title string) string {
	if title == "" {
		return ""
	}
	title = whitespace.ReplaceAllString(strings.TrimSpace(title), " ")
	// Remove common prefixes that don't belong in titles
	prefixes := []string{"Title:", "TITLE:", "Título:", "Titulo:"}
	for _, prefix := range prefixes {
		if strings.HasPrefix(title, prefix) {
			title = strings.TrimSpace(strings.TrimPrefix(title, prefix))
		}
	}
	return strings.TrimRight(title, " .")
}

func cleanORCID(orcid string) string {
	orcid = strings.Replace(orcid, "https://orcid.org/", "", 1)
	orcid = strings.Replace(orcid, "http://orcid.org/", "", 1)
	return strings.TrimSpace(orcid)
}

// inferLicenseSlug maps a creative commons license URL or id, like
// "by-nc/4.0", to a fatcat license slug.
func inferLicenseSlug(license string) string {
	license = strings.ToLower(license)
	switch {
	case strings.Contains(license, "by-nc-sa"):
		return "CC-BY-NC-SA"
	case strings.Contains(license, "by-nc-nd"):
		return "CC-BY-NC-ND"
	case strings.Contains(license, "by-nc"):
		return "CC-BY-NC"
	case strings.Contains(license, "by-sa"):
		return "CC-BY-SA"
	case strings.Contains(license, "by-nd"):
		return "CC-BY-ND"
	case strings.Contains(license, "cc0"), strings.Contains(license, "zero"):
		return "CC-0"
	case strings.Contains(license, "by"):
		return "CC-BY"
	}
	return ""
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
