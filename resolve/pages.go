package resolve

import (
	"sort"
	"strings"

	"github.com/miku/isiskit/isis"
)

// Pages groups start page, end page and electronic location.
type Pages struct {
	Start     string
	End       string
	ELocation string
}

// ResolvePages reads pagination from v14 (articles) or v514 (citations)
// occurrences. Three layouts exist: a single occurrence with f, l and e
// subfields; one occurrence per subfield; a single "start-end" main value.
// Values consisting of zeros only count as absent.
func ResolvePages(occs []isis.Occurrence) Pages {
	var p Pages
	p.Start = firstPage(occs, "f")
	p.End = firstPage(occs, "l")
	p.ELocation = firstPage(occs, "e")
	if (p.Start == "" || p.End == "") && len(occs) > 0 {
		parts := splitRange(occs[0].Value(isis.MainValue))
		if p.Start == "" {
			for _, v := range parts {
				if isPage(v) {
					p.Start = v
					break
				}
			}
		}
		if p.End == "" {
			for i := len(parts) - 1; i >= 0; i-- {
				if isPage(parts[i]) {
					p.End = parts[i]
					break
				}
			}
		}
	}
	return p
}

// String renders a page range, "229-232", or a single page.
func (p Pages) String() string {
	switch {
	case p.Start != "" && p.End != "" && p.Start != p.End:
		return p.Start + "-" + p.End
	case p.Start != "":
		return p.Start
	default:
		return p.End
	}
}

func firstPage(occs []isis.Occurrence, sub string) string {
	for _, occ := range occs {
		if v := strings.TrimSpace(occ.Value(sub)); isPage(v) {
			return v
		}
	}
	return ""
}

// splitRange splits a "start-end" value and sorts the parts.
func splitRange(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "-")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	sort.Strings(parts)
	return parts
}

func isPage(s string) bool {
	return s != "" && strings.Trim(s, "0") != ""
}
