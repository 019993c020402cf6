package scielo

import (
	"sort"
	"strings"

	"github.com/miku/isiskit/isis"
	"github.com/miku/isiskit/normal"
	"github.com/miku/isiskit/resolve"
)

// Journal wraps the title namespace of a document.
type Journal struct {
	data isis.Record
	s    *settings
}

// NewJournal creates a journal from a title record.
func NewJournal(title isis.Record, opts ...Option) (*Journal, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, &isis.MissingFieldError{Field: "title"}
	}
	return &Journal{data: title, s: s}, nil
}

// Record returns the underlying title record.
func (j *Journal) Record() isis.Record { return j.data }

// ScieloISSN is the ISSN used as journal identifier on the site, v400.
func (j *Journal) ScieloISSN() string {
	return strings.TrimSpace(j.data.First("v400", isis.MainValue, ""))
}

func (j *Journal) ISSN() resolve.ISSN { return resolve.ResolveISSN(j.data) }

func (j *Journal) PrintISSN() string { return j.ISSN().Print }

func (j *Journal) ElectronicISSN() string { return j.ISSN().Electronic }

// AnyISSN returns the ISSN of the preferred medium, falling back to the
// other one.
func (j *Journal) AnyISSN(priority string) string { return j.ISSN().Any(priority) }

func (j *Journal) Title() string { return text(j.data, "v100") }

func (j *Journal) Subtitle() string { return text(j.data, "v110") }

// FullTitle joins title and subtitle with " - ".
func (j *Journal) FullTitle() string {
	if st := j.Subtitle(); st != "" {
		return j.Title() + " - " + st
	}
	return j.Title()
}

func (j *Journal) AbbreviatedTitle() string { return text(j.data, "v150") }

func (j *Journal) AbbreviatedISOTitle() string { return text(j.data, "v151") }

func (j *Journal) TitleNLM() string { return text(j.data, "v421") }

func (j *Journal) Acronym() string { return strings.ToLower(text(j.data, "v68")) }

func (j *Journal) PublisherNames() []string { return texts(j.data, "v480") }

func (j *Journal) PublisherLocation() string { return text(j.data, "v490") }

// PublisherCity is stored in the same field as the location.
func (j *Journal) PublisherCity() string { return text(j.data, "v490") }

func (j *Journal) PublisherState() string { return text(j.data, "v320") }

// PublisherCountry returns the ISO 3166 code from v310 and the English
// country name, if the code is known.
func (j *Journal) PublisherCountry() (code, name string) {
	code = strings.ToUpper(text(j.data, "v310"))
	if code == "" {
		return "", ""
	}
	if c, ok := j.s.tables.Country(code); ok {
		return code, c.NameEn
	}
	return code, ""
}

func (j *Journal) Languages() []string { return j.languages("v350") }

func (j *Journal) AbstractLanguages() []string { return j.languages("v360") }

func (j *Journal) languages(code string) []string {
	var result []string
	for _, v := range texts(j.data, code) {
		result = append(result, j.s.language(v))
	}
	return result
}

func (j *Journal) SubjectAreas() []string { return texts(j.data, "v441") }

func (j *Journal) WoSSubjectAreas() []string { return texts(j.data, "v854") }

// WoSCitationIndexes lists the Web of Science indexes flagged in v851 to
// v853.
func (j *Journal) WoSCitationIndexes() []string {
	var result []string
	for _, ix := range []struct{ code, name string }{
		{"v851", "SCIE"},
		{"v852", "SSCI"},
		{"v853", "A&HCI"},
	} {
		if j.data.Has(ix.code) {
			result = append(result, ix.name)
		}
	}
	return result
}

func (j *Journal) Sponsors() []string { return texts(j.data, "v140") }

// EditorAddress joins all address lines.
func (j *Journal) EditorAddress() string {
	return strings.Join(texts(j.data, "v63"), ", ")
}

func (j *Journal) EditorEmail() string { return text(j.data, "v64") }

func (j *Journal) Copyrighter() string { return text(j.data, "v62") }

// Missions maps language to mission statement, nil if there are none.
func (j *Journal) Missions() map[string]string {
	var result map[string]string
	for _, c := range resolve.LanguageContents(j.data.Occurrences("v901"), "l", isis.MainValue, j.s.language) {
		if result == nil {
			result = make(map[string]string)
		}
		if _, ok := result[c.Lang]; !ok {
			result[c.Lang] = normal.Clean(c.Value)
		}
	}
	return result
}

// Periodicity returns the frequency code and its label.
func (j *Journal) Periodicity() (code, label string) {
	code = strings.ToUpper(text(j.data, "v380"))
	if code == "" {
		return "", ""
	}
	label, _ = j.s.tables.Periodicity(code)
	return code, label
}

// StatusEvent is a change in the publication status of a journal.
type StatusEvent struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// StatusHistory reads v51, where a and b are the date and status of
// inclusion, c and d those of the following change, e a reason. Events are
// sorted by date; events with an unreadable date are dropped.
func (j *Journal) StatusHistory() []StatusEvent {
	var result []StatusEvent
	add := func(date, status, reason string) {
		if date == "" || status == "" {
			return
		}
		d, err := resolve.Date(date)
		if err != nil {
			return
		}
		label, ok := j.s.tables.JournalStatus(status)
		if !ok {
			label = strings.ToLower(status)
		}
		result = append(result, StatusEvent{Date: d, Status: label, Reason: reason})
	}
	for _, occ := range j.data.Occurrences("v51") {
		add(occ.Value("a"), occ.Value("b"), "")
		add(occ.Value("c"), occ.Value("d"), occ.Value("e"))
	}
	sort.SliceStable(result, func(i, k int) bool {
		return result[i].Date < result[k].Date
	})
	return result
}

// CurrentStatus is the status of the latest event, empty if unknown.
func (j *Journal) CurrentStatus() string {
	h := j.StatusHistory()
	if len(h) == 0 {
		return ""
	}
	return h[len(h)-1].Status
}

func (j *Journal) FirstYear() string { return text(j.data, "v301") }

func (j *Journal) FirstVolume() string { return text(j.data, "v302") }

func (j *Journal) FirstNumber() string { return text(j.data, "v303") }

func (j *Journal) LastYear() string { return text(j.data, "v304") }

// License is a creative commons license.
type License struct {
	ID   string `json:"id"` // e.g. "by-nc/4.0"
	URL  string `json:"url,omitempty"`
	Text string `json:"text,omitempty"`
}

// Permissions extracts the license from the HTML notice in v540, the first
// creative commons link wins.
func (j *Journal) Permissions() (License, bool) {
	for _, occ := range j.data.Occurrences("v540") {
		notice := occ.Value("t")
		for _, link := range normal.Links(notice) {
			if id := licenseID(link); id != "" {
				return License{
					ID:   id,
					URL:  link,
					Text: normal.Clean(notice),
				}, true
			}
		}
	}
	return License{}, false
}

// licenseID turns "http://creativecommons.org/licenses/by-nc/4.0/" into
// "by-nc/4.0".
func licenseID(link string) string {
	const marker = "creativecommons.org/licenses/"
	i := strings.Index(strings.ToLower(link), marker)
	if i < 0 {
		return ""
	}
	id := strings.Trim(link[i+len(marker):], "/")
	if j := strings.IndexAny(id, "?#"); j >= 0 {
		id = strings.Trim(id[:j], "/")
	}
	return strings.ToLower(id)
}

// licenseFromID builds a license from a bare id like "by/4.0".
func licenseFromID(id string) License {
	id = strings.Trim(strings.ToLower(strings.TrimSpace(id)), "/")
	return License{
		ID:  id,
		URL: "http://creativecommons.org/licenses/" + id + "/",
	}
}

func (j *Journal) CollectionAcronym() string {
	return strings.ToLower(text(j.data, "v992"))
}

// ScieloDomain is the site host from v690 without scheme, or the domain of
// the collection.
func (j *Journal) ScieloDomain() string {
	if v := stripScheme(j.data.First("v690", isis.MainValue, "")); v != "" {
		return v
	}
	if c, ok := j.s.tables.Collection(j.CollectionAcronym()); ok {
		return c.Domain
	}
	return ""
}

func (j *Journal) CreationDate() (string, error) { return optionalDate(j.data, "v940") }

func (j *Journal) UpdateDate() (string, error) { return optionalDate(j.data, "v941") }

// URL of the journal home page, empty without domain or ISSN.
func (j *Journal) URL(lang string) string {
	return journalURL(j.ScieloDomain(), j.ScieloISSN(), lang)
}
