package resolve

import (
	"strings"

	"github.com/miku/isiskit/isis"
	"github.com/miku/isiskit/normal"
	"github.com/miku/isiskit/reftable"
)

// CountryTable is what affiliation resolution needs from the reference
// tables.
type CountryTable interface {
	CountryCode(text string) (string, bool)
	Country(alpha2 string) (reftable.Country, bool)
}

// Affiliation of an author, keyed by an index code (e.g. "AFF1") that
// author records point to.
type Affiliation struct {
	Index          string `json:"index"`
	Institution    string `json:"institution,omitempty"`
	OrgDiv1        string `json:"orgdiv1,omitempty"`
	OrgDiv2        string `json:"orgdiv2,omitempty"`
	OrgDiv3        string `json:"orgdiv3,omitempty"`
	AddrLine       string `json:"addr_line,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	Country        string `json:"country,omitempty"`
	CountryISO3166 string `json:"country_iso_3166,omitempty"`
	Email          string `json:"email,omitempty"`
	Normalized     bool   `json:"normalized"`
}

// RawAffiliations reads v70, as typed in by the submitter. The country code
// is set only when the country text matches a known name or code.
func RawAffiliations(r isis.Record, countries CountryTable) []Affiliation {
	var result []Affiliation
	for _, occ := range r.Occurrences("v70") {
		aff := Affiliation{
			Index:       affIndex(occ),
			Institution: normal.HTMLDecode(occ.Value(isis.MainValue)),
			OrgDiv1:     normal.HTMLDecode(occ.Value("1")),
			OrgDiv2:     normal.HTMLDecode(occ.Value("2")),
			OrgDiv3:     normal.HTMLDecode(occ.Value("3")),
			AddrLine:    normal.HTMLDecode(occ.Value("l")),
			City:        normal.HTMLDecode(occ.Value("c")),
			State:       normal.HTMLDecode(occ.Value("s")),
			Country:     normal.HTMLDecode(occ.Value("p")),
			Email:       occ.Value("e"),
		}
		if aff.Country != "" {
			if code, ok := countries.CountryCode(aff.Country); ok {
				aff.CountryISO3166 = code
			}
		}
		result = append(result, aff)
	}
	return result
}

// NormalizedAffiliations reads the curated v240 entries. The country code
// is checked against the country table, an unknown or missing code leaves
// the country empty. The state is taken as is.
func NormalizedAffiliations(r isis.Record, countries CountryTable) []Affiliation {
	var result []Affiliation
	for _, occ := range r.Occurrences("v240") {
		aff := Affiliation{
			Index:       affIndex(occ),
			Institution: normal.HTMLDecode(occ.Value(isis.MainValue)),
			State:       normal.HTMLDecode(occ.Value("s")),
			Normalized:  true,
		}
		if c, ok := countries.Country(occ.Value("p")); ok {
			aff.Country, aff.CountryISO3166 = c.NameEn, c.Alpha2
		}
		result = append(result, aff)
	}
	return result
}

// MixAffiliations overlays curated entries onto raw ones with the same
// index; curated entries without raw counterpart are dropped. Raw order is
// kept. A repeated raw index keeps its first position and its last value.
func MixAffiliations(raw, curated []Affiliation) []Affiliation {
	var (
		result   []Affiliation
		position = make(map[string]int)
	)
	for _, aff := range raw {
		aff.Normalized = false
		if i, ok := position[aff.Index]; ok {
			result[i] = aff
			continue
		}
		position[aff.Index] = len(result)
		result = append(result, aff)
	}
	for _, cur := range curated {
		i, ok := position[cur.Index]
		if !ok {
			continue
		}
		result[i].Institution = cur.Institution
		result[i].State = cur.State
		result[i].Country = cur.Country
		result[i].CountryISO3166 = cur.CountryISO3166
		result[i].Normalized = true
	}
	return result
}

// AffiliationConflicts lists, per index, the fields where a raw entry
// disagrees with its curated counterpart: "institution", "state" or
// "country". Fields empty on either side are not compared. Indexes without
// conflicts are omitted, the result is nil if there are none.
func AffiliationConflicts(raw, curated []Affiliation, states StateTable) map[string][]string {
	byIndex := make(map[string]Affiliation)
	for _, aff := range raw {
		byIndex[aff.Index] = aff
	}
	var result map[string][]string
	for _, cur := range curated {
		r, ok := byIndex[cur.Index]
		if !ok {
			continue
		}
		var fields []string
		if r.Institution != "" && cur.Institution != "" && !IsAMatch(r.Institution, cur.Institution) {
			fields = append(fields, "institution")
		}
		if r.State != "" && cur.State != "" && !IsAStateMatch(states, r.State, cur.State) {
			fields = append(fields, "state")
		}
		switch {
		case r.CountryISO3166 != "" && cur.CountryISO3166 != "":
			if r.CountryISO3166 != cur.CountryISO3166 {
				fields = append(fields, "country")
			}
		case r.Country != "" && cur.Country != "" && !IsAMatch(r.Country, cur.Country):
			fields = append(fields, "country")
		}
		if len(fields) == 0 {
			continue
		}
		if result == nil {
			result = make(map[string][]string)
		}
		result[cur.Index] = fields
	}
	return result
}

func affIndex(occ isis.Occurrence) string {
	return strings.ToUpper(strings.TrimSpace(occ.Value("i")))
}
