// Package fatcat contains the subset of the fatcat release schema that
// articles are exported to.
package fatcat

import "encoding/json"

type Creator struct {
	DisplayName string `json:"display_name,omitempty"`
	GivenName   string `json:"given_name,omitempty"`
	Surname     string `json:"surname,omitempty"`
	Orcid       string `json:"orcid,omitempty"`
}

type Contrib struct {
	Creator *Creator `json:"creator,omitempty"`
	Extra   struct {
		Seq             string   `json:"seq,omitempty"`
		MoreAffiliation []string `json:"more_affiliation,omitempty"`
	} `json:"extra,omitempty"`
	GivenName      string `json:"given_name,omitempty"`
	Index          int64  `json:"index"`
	RawName        string `json:"raw_name,omitempty"`
	Role           string `json:"role,omitempty"`
	Surname        string `json:"surname,omitempty"`
	RawAffiliation string `json:"raw_affiliation,omitempty"`
}

type Ref struct {
	ContainerName string          `json:"container_name,omitempty"`
	Extra         json.RawMessage `json:"extra,omitempty"`
	Index         int64           `json:"index,omitempty"`
	Key           string          `json:"key,omitempty"`
	Locator       string          `json:"locator,omitempty"`
	Title         string          `json:"title,omitempty"`
	Year          *int64          `json:"year,omitempty"`
}

// RefExtra carries cited work details without a place in Ref.
type RefExtra struct {
	Type         string   `json:"type,omitempty"`
	Authors      []string `json:"authors,omitempty"`
	DOI          string   `json:"doi,omitempty"`
	ISSN         string   `json:"issn,omitempty"`
	ISBN         string   `json:"isbn,omitempty"`
	URL          string   `json:"url,omitempty"`
	Volume       string   `json:"volume,omitempty"`
	Issue        string   `json:"issue,omitempty"`
	Unstructured string   `json:"unstructured,omitempty"`
}

type ExtID struct {
	DOI string `json:"doi,omitempty"`
}

type Abstract struct {
	Content  string `json:"content,omitempty"`
	Mimetype string `json:"mimetype,omitempty"`
	SHA1     string `json:"sha1,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

// Scielo holds source specific fields.
type Scielo struct {
	PID              string                       `json:"pid,omitempty"`
	Collection       string                       `json:"collection,omitempty"`
	DocumentType     string                       `json:"document_type,omitempty"`
	Languages        []string                     `json:"languages,omitempty"`
	TranslatedTitles map[string]string            `json:"translated_titles,omitempty"`
	Keywords         map[string][]string          `json:"keywords,omitempty"`
	Section          string                       `json:"section,omitempty"`
	Fulltexts        map[string]map[string]string `json:"fulltexts,omitempty"`
	Legend           string                       `json:"legend,omitempty"`
}

// Release, with expanded container.
type Release struct {
	Source    string     `json:"source"`
	Abstracts []Abstract `json:"abstracts,omitempty"`
	Container *Container `json:"container,omitempty"`
	Contribs  []Contrib  `json:"contribs,omitempty"`
	ExtIDs    ExtID      `json:"ext_ids,omitempty"`
	Extra     struct {
		Scielo Scielo `json:"scielo,omitempty"`
	} `json:"extra,omitempty"`
	Ident         string `json:"ident,omitempty"` // release ident
	ID            string `json:"id,omitempty"`    // new-style identifier
	Issue         string `json:"issue,omitempty"`
	Language      string `json:"language,omitempty"`
	LicenseSlug   string `json:"license_slug,omitempty"`
	Number        string `json:"number,omitempty"`
	OriginalTitle string `json:"original_title,omitempty"`
	Pages         string `json:"pages,omitempty"`
	Publisher     string `json:"publisher,omitempty"`
	Refs          []Ref  `json:"refs,omitempty"`
	ReleaseDate   string `json:"release_date,omitempty"`
	ReleaseStage  string `json:"release_stage,omitempty"`
	ReleaseType   string `json:"release_type,omitempty"`
	ReleaseYear   int64  `json:"release_year,omitempty"`
	Subtitle      string `json:"subtitle,omitempty"`
	Title         string `json:"title,omitempty"`
	Volume        string `json:"volume,omitempty"`
}

type Container struct {
	Name              string `json:"name,omitempty"`
	ContainerType     string `json:"container_type,omitempty"`
	PublicationStatus string `json:"publication_status,omitempty"`
	Publisher         string `json:"publisher,omitempty"`
	Issnl             string `json:"issnl,omitempty"`
	Issne             string `json:"issne,omitempty"`
	Issnp             string `json:"issnp,omitempty"`
}
