package scielo

import (
	"strconv"
	"strings"
	"sync"

	"github.com/miku/isiskit/isis"
	"github.com/miku/isiskit/normal"
	"github.com/miku/isiskit/resolve"
)

// Issue types.
const (
	IssueAhead        = "ahead"
	IssuePressRelease = "pressrelease"
	IssueSupplement   = "supplement"
	IssueSpecial      = "special"
	IssueRegular      = "regular"
)

// Issue wraps the issue namespace and, for its journal, the title
// namespace.
type Issue struct {
	data  isis.Record
	title isis.Record
	s     *settings

	journalOnce sync.Once
	journal     *Journal
	journalErr  error
}

// NewIssue creates an issue, title may be nil.
func NewIssue(issue, title isis.Record, opts ...Option) (*Issue, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, &isis.MissingFieldError{Field: "issue"}
	}
	return newIssue(issue, title, s), nil
}

func newIssue(issue, title isis.Record, s *settings) *Issue {
	return &Issue{data: issue, title: title, s: s}
}

// Record returns the underlying issue record.
func (i *Issue) Record() isis.Record { return i.data }

// Journal of the issue, built once.
func (i *Issue) Journal() (*Journal, error) {
	i.journalOnce.Do(func() {
		if i.title == nil {
			i.journalErr = &isis.UnavailableError{Entity: "journal", Namespace: "title"}
			return
		}
		i.journal = &Journal{data: i.title, s: i.s}
	})
	return i.journal, i.journalErr
}

func (i *Issue) Volume() string { return text(i.data, "v31") }

func (i *Issue) Number() string { return text(i.data, "v32") }

func (i *Issue) SupplementVolume() string { return text(i.data, "v131") }

func (i *Issue) SupplementNumber() string { return text(i.data, "v132") }

// SupplementLabel is the supplement number, else the supplement volume.
func (i *Issue) SupplementLabel() string {
	return firstNonEmpty(i.SupplementNumber(), i.SupplementVolume())
}

// Order is the v36 sort key, year followed by a sequence number.
func (i *Issue) Order() string { return text(i.data, "v36") }

func (i *Issue) PublicationDate() (string, error) { return optionalDate(i.data, "v65") }

// StartMonth and EndMonth split a v43 range like "Jan./Mar.".
func (i *Issue) StartMonth() string {
	start, _ := i.months()
	return start
}

func (i *Issue) EndMonth() string {
	_, end := i.months()
	return end
}

func (i *Issue) months() (string, string) {
	m := strings.TrimSpace(i.data.First("v43", "m", ""))
	if m == "" {
		return "", ""
	}
	start, end, ok := strings.Cut(m, "/")
	if !ok {
		return m, m
	}
	return strings.TrimSpace(start), strings.TrimSpace(end)
}

// Type classifies the issue by its numbering.
func (i *Issue) Type() string {
	number := strings.ToLower(i.Number())
	switch {
	case strings.Contains(number, "ahead"):
		return IssueAhead
	case strings.EqualFold(text(i.data, "v41"), "pr") || strings.HasSuffix(number, "pr"):
		return IssuePressRelease
	case i.SupplementLabel() != "" || i.data.Has("v131") || i.data.Has("v132"):
		return IssueSupplement
	case strings.HasPrefix(number, "spe"):
		return IssueSpecial
	default:
		return IssueRegular
	}
}

func (i *Issue) IsAheadOfPrint() bool { return i.Type() == IssueAhead }

func (i *Issue) IsPressRelease() bool { return i.Type() == IssuePressRelease }

// TotalDocuments from v122, zero if absent or malformed.
func (i *Issue) TotalDocuments() int {
	n, err := strconv.Atoi(text(i.data, "v122"))
	if err != nil {
		return 0
	}
	return n
}

// Sections maps section code to its titles per language.
func (i *Issue) Sections() map[string]map[string]string {
	var result map[string]map[string]string
	for _, occ := range i.data.Occurrences("v49") {
		code := strings.TrimSpace(occ.Value("c"))
		l, t := strings.TrimSpace(occ.Value("l")), strings.TrimSpace(occ.Value("t"))
		if code == "" || l == "" || t == "" {
			continue
		}
		if result == nil {
			result = make(map[string]map[string]string)
		}
		if result[code] == nil {
			result[code] = make(map[string]string)
		}
		lang := i.s.language(l)
		if _, ok := result[code][lang]; !ok {
			result[code][lang] = normal.HTMLDecode(t)
		}
	}
	return result
}

// section returns the titles of a section code in field order.
func (i *Issue) section(code string) []resolve.Content[string] {
	var occs []isis.Occurrence
	for _, occ := range i.data.Occurrences("v49") {
		if strings.EqualFold(strings.TrimSpace(occ.Value("c")), code) {
			occs = append(occs, occ)
		}
	}
	return resolve.LanguageContents(occs, "l", "t", i.s.language)
}

// ISSN resolves from the issue record when it carries ISSN fields, from the
// journal otherwise.
func (i *Issue) ISSN() resolve.ISSN {
	if i.data.Has("v435") || i.data.Has("v35") {
		if v := resolve.ResolveISSN(i.data); !v.IsZero() {
			return v
		}
	}
	if i.title != nil {
		return resolve.ResolveISSN(i.title)
	}
	return resolve.ISSN{}
}

func (i *Issue) scieloISSN() string {
	if i.title != nil {
		if v := text(i.title, "v400"); v != "" {
			return v
		}
	}
	return i.ISSN().Any(resolve.PriorityElectronic)
}

// PublisherID is v880, or composed as "S", ISSN, four digit year and four
// digit sequence taken from the order.
func (i *Issue) PublisherID() string {
	if v := text(i.data, "v880"); v != "" {
		return v
	}
	order, issn := i.Order(), i.scieloISSN()
	if len(order) < 5 || issn == "" {
		return ""
	}
	year, seq := order[:4], order[4:]
	if len(seq) < 4 {
		seq = strings.Repeat("0", 4-len(seq)) + seq
	}
	return "S" + issn + year + seq
}

// URL of the table of contents.
func (i *Issue) URL(lang string) string {
	j, err := i.Journal()
	if err != nil {
		return ""
	}
	return issueURL(j.ScieloDomain(), i.PublisherID(), lang)
}
