package scielo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/miku/isiskit/isis"
	"github.com/miku/isiskit/normal"
	"github.com/miku/isiskit/resolve"
)

// URL templates of the classic SciELO site.
const (
	pdfURLTemplate      = "http://%s/scielo.php?script=sci_pdf&pid=%s&lng=%s&tlng=%s"
	fulltextURLTemplate = "http://%s/scielo.php?script=sci_arttext&pid=%s&lng=%s&tlng=%s"
	issueURLTemplate    = "http://%s/scielo.php?script=sci_issuetoc&pid=%s&lng=%s"
	journalURLTemplate  = "http://%s/scielo.php?script=sci_serial&pid=%s&lng=%s"
)

func pdfURL(domain, pid, lang string) string {
	if domain == "" || pid == "" {
		return ""
	}
	return fmt.Sprintf(pdfURLTemplate, domain, pid, lang, lang)
}

func fulltextURL(domain, pid, lang string) string {
	if domain == "" || pid == "" {
		return ""
	}
	return fmt.Sprintf(fulltextURLTemplate, domain, pid, lang, lang)
}

func issueURL(domain, pid, lang string) string {
	if domain == "" || len(pid) < 18 {
		return ""
	}
	return fmt.Sprintf(issueURLTemplate, domain, pid[:18], lang)
}

func journalURL(domain, issn, lang string) string {
	if domain == "" || issn == "" {
		return ""
	}
	return fmt.Sprintf(journalURLTemplate, domain, issn, lang)
}

// stripScheme turns "http://www.scielo.br/" into "www.scielo.br".
func stripScheme(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	return strings.TrimRight(s, "/")
}

// text returns the decoded main value of the first occurrence.
func text(r isis.Record, code string) string {
	return normal.HTMLDecode(strings.TrimSpace(r.First(code, isis.MainValue, "")))
}

// texts returns decoded main values of all occurrences.
func texts(r isis.Record, code string) []string {
	var result []string
	for _, v := range r.Values(code, isis.MainValue) {
		if v = normal.HTMLDecode(strings.TrimSpace(v)); v != "" {
			result = append(result, v)
		}
	}
	return result
}

// optionalDate resolves a date field, absence is not an error.
func optionalDate(r isis.Record, code string) (string, error) {
	v, ok := r.FirstOK(code, isis.MainValue)
	if !ok {
		return "", nil
	}
	d, err := resolve.Date(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", code, err)
	}
	return d, nil
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}

// Author of an article or cited work.
type Author struct {
	Surname          string   `json:"surname,omitempty"`
	GivenNames       string   `json:"given_names,omitempty"`
	Role             string   `json:"role,omitempty"`
	ORCID            string   `json:"orcid,omitempty"`
	XrefAffiliations []string `json:"xref,omitempty"`
}

// Name renders "Surname, Given".
func (a Author) Name() string {
	switch {
	case a.Surname != "" && a.GivenNames != "":
		return a.Surname + ", " + a.GivenNames
	default:
		return firstNonEmpty(a.Surname, a.GivenNames)
	}
}

func authors(r isis.Record, code string) []Author {
	var result []Author
	for _, occ := range r.Occurrences(code) {
		a := Author{
			Surname:    normal.HTMLDecode(strings.TrimSpace(occ.Value("s"))),
			GivenNames: normal.HTMLDecode(strings.TrimSpace(occ.Value("n"))),
			Role:       strings.TrimSpace(occ.Value("r")),
			ORCID:      strings.TrimSpace(occ.Value("k")),
		}
		if a.Surname == "" && a.GivenNames == "" {
			continue
		}
		for _, x := range strings.Fields(occ.Value("1")) {
			a.XrefAffiliations = append(a.XrefAffiliations, strings.ToUpper(x))
		}
		result = append(result, a)
	}
	return result
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
