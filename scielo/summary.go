package scielo

import (
	"github.com/miku/isiskit/resolve"
)

// Summary is a flat view of an article, suitable for JSON lines output.
type Summary struct {
	PublisherID          string                       `json:"publisher_id"`
	Collection           string                       `json:"collection,omitempty"`
	DOI                  string                       `json:"doi,omitempty"`
	DocumentType         string                       `json:"document_type"`
	OriginalLanguage     string                       `json:"original_language,omitempty"`
	Languages            []string                     `json:"languages,omitempty"`
	OriginalTitle        string                       `json:"original_title,omitempty"`
	TranslatedTitles     map[string]string            `json:"translated_titles,omitempty"`
	OriginalAbstract     string                       `json:"original_abstract,omitempty"`
	TranslatedAbstracts  map[string]string            `json:"translated_abstracts,omitempty"`
	Keywords             map[string][]string          `json:"keywords,omitempty"`
	Section              string                       `json:"section,omitempty"`
	Authors              []Author                     `json:"authors,omitempty"`
	Affiliations         []resolve.Affiliation        `json:"affiliations,omitempty"`
	PublicationDate      string                       `json:"publication_date,omitempty"`
	Volume               string                       `json:"volume,omitempty"`
	Number               string                       `json:"number,omitempty"`
	Supplement           string                       `json:"supplement,omitempty"`
	Pages                string                       `json:"pages,omitempty"`
	ELocation            string                       `json:"elocation,omitempty"`
	JournalTitle         string                       `json:"journal_title,omitempty"`
	PrintISSN            string                       `json:"print_issn,omitempty"`
	ElectronicISSN       string                       `json:"electronic_issn,omitempty"`
	License              string                       `json:"license,omitempty"`
	Fulltexts            map[string]map[string]string `json:"fulltexts,omitempty"`
	BibliographicLegends map[string]string            `json:"bibliographic_legends,omitempty"`
	CitationTypes        map[string]int               `json:"citation_types,omitempty"`
}

// Summary collects the main fields of the article. It fails only if the
// publisher id or a date is unreadable.
func (a *Article) Summary() (*Summary, error) {
	pid, err := a.PublisherID()
	if err != nil {
		return nil, err
	}
	date, err := a.PublicationDate()
	if err != nil {
		return nil, err
	}
	p := a.Pages()
	s := &Summary{
		PublisherID:          pid,
		Collection:           a.CollectionAcronym(),
		DOI:                  a.DOI(),
		DocumentType:         a.DocumentType(),
		OriginalLanguage:     a.OriginalLanguage(),
		Languages:            a.Languages(),
		OriginalTitle:        a.OriginalTitle(),
		TranslatedTitles:     a.TranslatedTitles(),
		OriginalAbstract:     a.OriginalAbstract(),
		TranslatedAbstracts:  a.TranslatedAbstracts(),
		Keywords:             a.Keywords(),
		Section:              a.OriginalSection(),
		Authors:              a.Authors(),
		Affiliations:         a.MixedAffiliations(),
		PublicationDate:      date,
		Volume:               a.Volume(),
		Number:               a.Number(),
		Supplement:           a.SupplementLabel(),
		Pages:                p.String(),
		ELocation:            p.ELocation,
		Fulltexts:            a.Fulltexts(),
		BibliographicLegends: a.BibliographicLegends(),
	}
	if j, err := a.Journal(); err == nil {
		s.JournalTitle = j.Title()
		issn := j.ISSN()
		s.PrintISSN, s.ElectronicISSN = issn.Print, issn.Electronic
	}
	if l, ok := a.Permissions(); ok {
		s.License = l.ID
	}
	for _, c := range a.Citations() {
		if s.CitationTypes == nil {
			s.CitationTypes = make(map[string]int)
		}
		s.CitationTypes[string(c.PublicationType())]++
	}
	return s, nil
}
