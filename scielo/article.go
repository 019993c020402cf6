package scielo

import (
	"path"
	"strings"
	"sync"
	"time"

	"github.com/miku/isiskit/dateutil"
	"github.com/miku/isiskit/isis"
	"github.com/miku/isiskit/legend"
	"github.com/miku/isiskit/normal"
	"github.com/miku/isiskit/resolve"
)

// Data model versions, derived from v120.
const (
	DataModelXML  = "xml"
	DataModelHTML = "html"
)

// Article is the main entity, it wraps a complete document.
type Article struct {
	doc  *isis.Document
	data isis.Record
	s    *settings

	journalOnce sync.Once
	journal     *Journal
	journalErr  error

	issueOnce sync.Once
	issue     *Issue
	issueErr  error

	citationsOnce sync.Once
	citations     []*Citation
}

// NewArticle creates an article from a decoded document. Options are
// validated first, then the article namespace is required.
func NewArticle(doc *isis.Document, opts ...Option) (*Article, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.Article == nil {
		return nil, &isis.MissingFieldError{Field: "article"}
	}
	return &Article{doc: doc, data: doc.Article, s: s}, nil
}

// Document returns the wrapped document.
func (a *Article) Document() *isis.Document { return a.doc }

// Journal is built from the title namespace on first call and cached.
func (a *Article) Journal() (*Journal, error) {
	a.journalOnce.Do(func() {
		if a.doc.Title == nil {
			a.journalErr = &isis.UnavailableError{Entity: "journal", Namespace: "title"}
			return
		}
		a.journal = &Journal{data: a.doc.Title, s: a.s}
	})
	return a.journal, a.journalErr
}

// Issue is built from the issue namespace on first call and cached.
func (a *Article) Issue() (*Issue, error) {
	a.issueOnce.Do(func() {
		if a.doc.Issue == nil {
			a.issueErr = &isis.UnavailableError{Entity: "issue", Namespace: "issue"}
			return
		}
		a.issue = newIssue(a.doc.Issue, a.doc.Title, a.s)
	})
	return a.issue, a.issueErr
}

// Citations are built on first call, in field order.
func (a *Article) Citations() []*Citation {
	a.citationsOnce.Do(func() {
		for _, r := range a.doc.Citations {
			if r == nil {
				continue
			}
			a.citations = append(a.citations, newCitation(r, a.s))
		}
	})
	return a.citations
}

// PublisherID is the SciELO PID, v880.
func (a *Article) PublisherID() (string, error) {
	v, err := a.data.RequireFirst("v880", isis.MainValue)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

func (a *Article) pid() string {
	v, _ := a.PublisherID()
	return v
}

// CollectionAcronym from the document, v992 of the article or journal.
func (a *Article) CollectionAcronym() string {
	if a.doc.Collection != "" {
		return strings.ToLower(a.doc.Collection)
	}
	if v := text(a.data, "v992"); v != "" {
		return strings.ToLower(v)
	}
	if j, err := a.Journal(); err == nil {
		return j.CollectionAcronym()
	}
	return ""
}

// ScieloDomain of the journal, else of the collection.
func (a *Article) ScieloDomain() string {
	if j, err := a.Journal(); err == nil {
		if v := stripScheme(j.data.First("v690", isis.MainValue, "")); v != "" {
			return v
		}
	}
	if c, ok := a.s.tables.Collection(a.CollectionAcronym()); ok {
		return c.Domain
	}
	return ""
}

// DocumentType maps v71 through the article types table.
func (a *Article) DocumentType() string {
	return a.s.tables.ArticleType(text(a.data, "v71"))
}

func (a *Article) rawOriginalLanguage() string {
	return strings.ToLower(text(a.data, "v40"))
}

// OriginalLanguage in the configured format, empty if v40 is absent.
func (a *Article) OriginalLanguage() string {
	code := a.rawOriginalLanguage()
	if code == "" {
		return ""
	}
	return a.s.language(code)
}

// rawLanguages lists the original language, v601 and fulltext languages,
// without duplicates.
func (a *Article) rawLanguages() []string {
	var (
		result []string
		seen   = make(map[string]bool)
	)
	add := func(code string) {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" || seen[code] {
			return
		}
		seen[code] = true
		result = append(result, code)
	}
	add(a.rawOriginalLanguage())
	for _, v := range a.data.Values("v601", isis.MainValue) {
		add(v)
	}
	for _, kind := range []string{"html", "pdf"} {
		for _, lang := range sortedKeys(a.doc.Fulltexts[kind]) {
			add(lang)
		}
	}
	return result
}

// Languages in the configured format.
func (a *Article) Languages() []string {
	var result []string
	for _, code := range a.rawLanguages() {
		result = append(result, a.s.language(code))
	}
	return result
}

func (a *Article) partition(occs []isis.Occurrence, langSub, contentSub string) resolve.Partition[string] {
	items := resolve.LanguageContents(occs, langSub, contentSub, a.s.language)
	for k := range items {
		items[k].Value = normal.Clean(items[k].Value)
	}
	return resolve.PartitionContent(items, a.OriginalLanguage())
}

// OriginalTitle is the v12 title in the original language.
func (a *Article) OriginalTitle() string {
	return a.partition(a.data.Occurrences("v12"), "l", isis.MainValue).Original
}

// TranslatedTitles maps language to title, nil without translations.
func (a *Article) TranslatedTitles() map[string]string {
	return a.partition(a.data.Occurrences("v12"), "l", isis.MainValue).Translated
}

func (a *Article) OriginalAbstract() string {
	return a.partition(a.data.Occurrences("v83"), "l", "a").Original
}

func (a *Article) TranslatedAbstracts() map[string]string {
	return a.partition(a.data.Occurrences("v83"), "l", "a").Translated
}

func (a *Article) keywords() resolve.Partition[[]string] {
	items := resolve.LanguageContents(a.data.Occurrences("v85"), "l", "k", a.s.language)
	for k := range items {
		items[k].Value = normal.Clean(items[k].Value)
	}
	return resolve.PartitionContent(resolve.GroupContents(items), a.OriginalLanguage())
}

// Keywords maps language to keywords, all languages included.
func (a *Article) Keywords() map[string][]string {
	var result map[string][]string
	for _, g := range resolve.GroupContents(resolve.LanguageContents(a.data.Occurrences("v85"), "l", "k", a.s.language)) {
		if result == nil {
			result = make(map[string][]string)
		}
		for _, v := range g.Value {
			result[g.Lang] = append(result[g.Lang], normal.Clean(v))
		}
	}
	return result
}

func (a *Article) OriginalKeywords() []string { return a.keywords().Original }

func (a *Article) TranslatedKeywords() map[string][]string { return a.keywords().Translated }

// SectionCode is the v49 code pointing into the sections of the issue.
func (a *Article) SectionCode() string { return text(a.data, "v49") }

func (a *Article) section() resolve.Partition[string] {
	code := a.SectionCode()
	if code == "" {
		return resolve.Partition[string]{}
	}
	issue, err := a.Issue()
	if err != nil {
		return resolve.Partition[string]{}
	}
	items := issue.section(code)
	for k := range items {
		items[k].Value = normal.HTMLDecode(items[k].Value)
	}
	return resolve.PartitionContent(items, a.OriginalLanguage())
}

func (a *Article) OriginalSection() string { return a.section().Original }

func (a *Article) TranslatedSections() map[string]string { return a.section().Translated }

func (a *Article) Authors() []Author { return authors(a.data, "v10") }

func (a *Article) CorporativeAuthors() []string { return texts(a.data, "v11") }

func (a *Article) RawAffiliations() []resolve.Affiliation {
	return resolve.RawAffiliations(a.data, a.s.tables)
}

func (a *Article) NormalizedAffiliations() []resolve.Affiliation {
	return resolve.NormalizedAffiliations(a.data, a.s.tables)
}

// MixedAffiliations completes raw affiliations with curated data.
func (a *Article) MixedAffiliations() []resolve.Affiliation {
	return resolve.MixAffiliations(a.RawAffiliations(), a.NormalizedAffiliations())
}

// AffiliationConflicts reports, per affiliation index, where the submitted
// affiliation disagrees with the curated one.
func (a *Article) AffiliationConflicts() map[string][]string {
	return resolve.AffiliationConflicts(a.RawAffiliations(), a.NormalizedAffiliations(), a.s.tables)
}

func (a *Article) Pages() resolve.Pages { return resolve.ResolvePages(a.data.Occurrences("v14")) }

func (a *Article) StartPage() string { return a.Pages().Start }

func (a *Article) EndPage() string { return a.Pages().End }

func (a *Article) ELocation() string { return a.Pages().ELocation }

// DOI from the document, else v237.
func (a *Article) DOI() string {
	return strings.TrimSpace(firstNonEmpty(a.doc.DOI, text(a.data, "v237")))
}

func (a *Article) PublicationDate() (string, error) { return optionalDate(a.data, "v65") }

// PublicationYear is the year of the publication date.
func (a *Article) PublicationYear() string {
	d, err := a.PublicationDate()
	if err != nil || len(d) < 4 {
		return ""
	}
	return d[:4]
}

func (a *Article) AheadPublicationDate() (string, error) { return optionalDate(a.data, "v223") }

func (a *Article) ReceiveDate() (string, error) { return optionalDate(a.data, "v112") }

func (a *Article) AcceptanceDate() (string, error) { return optionalDate(a.data, "v114") }

func (a *Article) ReviewDate() (string, error) { return optionalDate(a.data, "v116") }

func (a *Article) CreationDate() (string, error) { return optionalDate(a.data, "v93") }

func (a *Article) UpdateDate() (string, error) { return optionalDate(a.data, "v91") }

// ProcessingDate from the document, else the update date.
func (a *Article) ProcessingDate() (string, error) {
	if a.doc.ProcessingDate != "" {
		return dateutil.ISODate(a.doc.ProcessingDate)
	}
	return a.UpdateDate()
}

// CreatedAt parses the document timestamp, zero if absent.
func (a *Article) CreatedAt() (time.Time, error) { return timestamp(a.doc.CreatedAt) }

// UpdatedAt parses the document timestamp, zero if absent.
func (a *Article) UpdatedAt() (time.Time, error) { return timestamp(a.doc.UpdatedAt) }

func timestamp(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return dateutil.Parse(s)
}

// Volume of the article, else of the issue. Same for Number and
// SupplementLabel.
func (a *Article) Volume() string {
	return firstNonEmpty(text(a.data, "v31"), a.fromIssue((*Issue).Volume))
}

func (a *Article) Number() string {
	return firstNonEmpty(text(a.data, "v32"), a.fromIssue((*Issue).Number))
}

func (a *Article) SupplementLabel() string {
	return firstNonEmpty(text(a.data, "v132"), text(a.data, "v131"), a.fromIssue((*Issue).SupplementLabel))
}

func (a *Article) fromIssue(f func(*Issue) string) string {
	issue, err := a.Issue()
	if err != nil {
		return ""
	}
	return f(issue)
}

// IsAheadOfPrint is true for articles of an ahead of print issue.
func (a *Article) IsAheadOfPrint() bool {
	if strings.Contains(strings.ToLower(text(a.data, "v32")), "ahead") {
		return true
	}
	issue, err := a.Issue()
	return err == nil && issue.IsAheadOfPrint()
}

func (a *Article) Order() string { return text(a.data, "v121") }

// FileCode is the base name of v702 without extension.
func (a *Article) FileCode() string {
	v := strings.ReplaceAll(text(a.data, "v702"), `\`, "/")
	if v == "" {
		return ""
	}
	base := path.Base(v)
	return strings.TrimSuffix(base, path.Ext(base))
}

// DataModelVersion is "xml" for documents loaded from XML, "html"
// otherwise.
func (a *Article) DataModelVersion() string {
	if strings.Contains(strings.ToLower(text(a.data, "v120")), "xml") {
		return DataModelXML
	}
	return DataModelHTML
}

func (a *Article) ProjectName() string { return text(a.data, "v58") }

func (a *Article) ProjectSponsors() []string { return texts(a.data, "v59") }

func (a *Article) Contracts() []string { return texts(a.data, "v60") }

// Permissions is the document license, else the journal license.
func (a *Article) Permissions() (License, bool) {
	if a.doc.License != "" {
		return licenseFromID(a.doc.License), true
	}
	j, err := a.Journal()
	if err != nil {
		return License{}, false
	}
	return j.Permissions()
}

// Fulltexts maps "pdf" and "html" to per language URLs. Document supplied
// fulltexts win, otherwise links are built for every language.
func (a *Article) Fulltexts() map[string]map[string]string {
	if len(a.doc.Fulltexts) > 0 {
		result := make(map[string]map[string]string, len(a.doc.Fulltexts))
		for kind, links := range a.doc.Fulltexts {
			m := make(map[string]string, len(links))
			for lang, link := range links {
				m[lang] = link
			}
			result[kind] = m
		}
		return result
	}
	var (
		domain, pid = a.ScieloDomain(), a.pid()
		result      map[string]map[string]string
	)
	if domain == "" || pid == "" {
		return nil
	}
	for _, lang := range a.rawLanguages() {
		if result == nil {
			result = map[string]map[string]string{
				"pdf":  make(map[string]string),
				"html": make(map[string]string),
			}
		}
		result["pdf"][lang] = pdfURL(domain, pid, lang)
		result["html"][lang] = fulltextURL(domain, pid, lang)
	}
	return result
}

func (a *Article) PDFURL(lang string) string { return pdfURL(a.ScieloDomain(), a.pid(), lang) }

func (a *Article) HTMLURL(lang string) string {
	return fulltextURL(a.ScieloDomain(), a.pid(), lang)
}

func (a *Article) IssueURL(lang string) string {
	return issueURL(a.ScieloDomain(), a.pid(), lang)
}

// JournalURL uses the journal ISSN, or the ISSN part of the PID.
func (a *Article) JournalURL(lang string) string {
	var issn string
	if j, err := a.Journal(); err == nil {
		issn = j.ScieloISSN()
	}
	if pid := a.pid(); issn == "" && len(pid) >= 10 {
		issn = pid[1:10]
	}
	return journalURL(a.ScieloDomain(), issn, lang)
}

// BibliographicLegends renders legends with the configured formatter.
func (a *Article) BibliographicLegends() map[string]string {
	p := a.Pages()
	in := legend.Input{
		Volume:          a.Volume(),
		Number:          a.Number(),
		StartPage:       p.Start,
		EndPage:         p.End,
		ELocation:       p.ELocation,
		SupplementLabel: a.SupplementLabel(),
		Language:        a.rawOriginalLanguage(),
	}
	in.PublicationDate, _ = a.PublicationDate()
	if j, err := a.Journal(); err == nil {
		in.JournalTitle = j.Title()
		in.AbbrevTitle = j.AbbreviatedTitle()
	}
	return a.s.formatter.Format(in)
}
