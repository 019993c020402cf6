// Package reftable holds the static reference tables the resolvers depend
// on: ISO 639 languages, ISO 3166 countries, state abbreviations, article
// types and a few controlled vocabularies. Tables are read-only once built.
package reftable

import (
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/miku/isiskit/normal"
	"golang.org/x/text/cases"
)

//go:embed data/*.csv
var bundled embed.FS

const (
	CountriesFile = "countries.csv"
	StatesFile    = "states.csv"
)

// Country is a row of the country table.
type Country struct {
	Alpha2 string
	Alpha3 string
	NameEn string
	NamePt string
	NameEs string
}

// Tables bundles all lookups. The zero value is not usable, use Default,
// Load or LoadDir.
type Tables struct {
	countries    map[string]Country // alpha-2
	countryForms map[string]string  // folded name or code, to alpha-2
	states       map[string]string  // location normalized name, to abbreviation
	abbrevs      map[string]bool
	articleTypes map[string]string
	periodicity  map[string]string
	status       map[string]string
	collections  map[string]Collection
	iso6392      map[string]string
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// Default returns the tables built from the bundled data files. The tables
// are built once per process.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = loadFS(func(name string) (io.ReadCloser, error) {
			return bundled.Open("data/" + name)
		})
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("reftable: bundled data: %v", defaultErr))
	}
	return defaultTables
}

// LoadDir reads country and state tables from a directory, falling back to
// the bundled file for any file not found in dir.
func LoadDir(dir string) (*Tables, error) {
	return loadFS(func(name string) (io.ReadCloser, error) {
		f, err := os.Open(filepath.Join(dir, name))
		if os.IsNotExist(err) {
			return bundled.Open("data/" + name)
		}
		return f, err
	})
}

func loadFS(open func(name string) (io.ReadCloser, error)) (*Tables, error) {
	cf, err := open(CountriesFile)
	if err != nil {
		return nil, err
	}
	defer cf.Close()
	sf, err := open(StatesFile)
	if err != nil {
		return nil, err
	}
	defer sf.Close()
	return Load(cf, sf)
}

// Load builds tables from a country CSV (alpha_2, alpha_3, name_en, name_pt,
// name_es) and a state CSV (name, abbreviation), both with header rows.
func Load(countries, states io.Reader) (*Tables, error) {
	t := &Tables{
		countries:    make(map[string]Country),
		countryForms: make(map[string]string),
		states:       make(map[string]string),
		abbrevs:      make(map[string]bool),
		articleTypes: articleTypes,
		periodicity:  periodicity,
		status:       journalStatus,
		collections:  collections,
		iso6392:      iso6392,
	}
	rows, err := readCSV(countries, 5)
	if err != nil {
		return nil, fmt.Errorf("countries: %w", err)
	}
	for _, row := range rows {
		c := Country{
			Alpha2: strings.ToUpper(row[0]),
			Alpha3: strings.ToUpper(row[1]),
			NameEn: row[2],
			NamePt: row[3],
			NameEs: row[4],
		}
		t.countries[c.Alpha2] = c
		for _, form := range row {
			if k := foldKey(form); k != "" {
				if _, ok := t.countryForms[k]; !ok {
					t.countryForms[k] = c.Alpha2
				}
			}
		}
	}
	rows, err = readCSV(states, 2)
	if err != nil {
		return nil, fmt.Errorf("states: %w", err)
	}
	for _, row := range rows {
		abbrev := strings.ToUpper(strings.TrimSpace(row[1]))
		t.states[normal.Location.Normalize(row[0])] = abbrev
		t.abbrevs[abbrev] = true
	}
	return t, nil
}

func readCSV(r io.Reader, columns int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = columns
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

// foldKey uses a fresh caser per call, casers are not safe for concurrent use.
func foldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Country returns the country for an alpha-2 code.
func (t *Tables) Country(alpha2 string) (Country, bool) {
	c, ok := t.countries[strings.ToUpper(strings.TrimSpace(alpha2))]
	return c, ok
}

// CountryCode resolves a country name in English, Portuguese or Spanish, or
// an alpha-2 or alpha-3 code, case insensitively, to its alpha-2 code.
func (t *Tables) CountryCode(text string) (string, bool) {
	code, ok := t.countryForms[foldKey(text)]
	return code, ok
}

// StateAbbreviation maps a state name or abbreviation to the abbreviation.
// The name is compared in normal.Location form.
func (t *Tables) StateAbbreviation(name string) (string, bool) {
	k := normal.Location.Normalize(name)
	if t.abbrevs[k] {
		return k, true
	}
	v, ok := t.states[k]
	return v, ok
}

// ArticleType returns the label of a document type code, "undefined" for
// unknown codes.
func (t *Tables) ArticleType(code string) string {
	if v, ok := t.articleTypes[strings.ToLower(strings.TrimSpace(code))]; ok {
		return v
	}
	return "undefined"
}

// Periodicity returns the label for a frequency code.
func (t *Tables) Periodicity(code string) (string, bool) {
	v, ok := t.periodicity[strings.ToUpper(code)]
	return v, ok
}

// JournalStatus maps a status code (C, D, S, ...) to a label.
func (t *Tables) JournalStatus(code string) (string, bool) {
	v, ok := t.status[strings.ToUpper(code)]
	return v, ok
}

// Collection looks up a collection acronym.
func (t *Tables) Collection(acronym string) (Collection, bool) {
	c, ok := t.collections[strings.ToLower(acronym)]
	return c, ok
}

// IsISO6391 reports whether code is a known two letter language code.
func (t *Tables) IsISO6391(code string) bool {
	_, ok := t.iso6392[code]
	return ok
}

// ISO6392 maps a two letter language code to its three letter
// (bibliographic) code.
func (t *Tables) ISO6392(code string) (string, bool) {
	v, ok := t.iso6392[code]
	return v, ok
}
