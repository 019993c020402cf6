package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/miku/isiskit/isis"
	"github.com/miku/isiskit/legend"
	"github.com/miku/isiskit/resolve"
	"github.com/miku/isiskit/scielo"
	"github.com/miku/isiskit/schema/fatcat"
	"github.com/segmentio/encoding/json"
)

// DocumentTypeMap maps SciELO document types to fatcat release types.
var DocumentTypeMap = map[string]string{
	"research-article":    "article-journal",
	"review-article":      "article-journal",
	"case-report":         "article-journal",
	"rapid-communication": "article-journal",
	"article-commentary":  "article-journal",
	"editorial":           "editorial",
	"letter":              "letter",
	"book-review":         "review",
	"correction":          "erratum",
	"abstract":            "abstract",
	"press-release":       "post",
}

var containerStatus = map[string]string{
	"current":   "active",
	"deceased":  "discontinued",
	"suspended": "suspended",
}

// ArticleToFatcatRelease converts a SciELO document into a release. The
// article is always read with ISO 639-1 language codes.
func ArticleToFatcatRelease(doc *isis.Document, opts ...scielo.Option) (*fatcat.Release, error) {
	opts = append(opts, scielo.WithLanguageFormat(string(resolve.ISO6391)))
	article, err := scielo.NewArticle(doc, opts...)
	if err != nil {
		if errors.Is(err, isis.ErrMissingRequiredField) {
			return nil, ErrSkipNoPublisherID
		}
		return nil, err
	}
	pid, err := article.PublisherID()
	if err != nil {
		return nil, ErrSkipNoPublisherID
	}
	original := cleanTitle(article.OriginalTitle())
	if original == "" {
		return nil, ErrSkipNoTitle
	}
	lang := validLanguage(article.OriginalLanguage())
	rel := fatcat.Release{
		ID:           fmt.Sprintf("scielo-%s", hashString(pid)),
		Source:       "scielo",
		Title:        original,
		Language:     lang,
		ReleaseStage: "published",
		ExtIDs: fatcat.ExtID{
			DOI: cleanDOI(article.DOI()),
		},
		Volume:   article.Volume(),
		Issue:    article.Number(),
		Pages:    article.Pages().String(),
		Contribs: contribs(article),
		Refs:     refs(article),
	}
	if en, ok := article.TranslatedTitles()["en"]; ok && lang != "en" {
		rel.Title, rel.OriginalTitle = cleanTitle(en), original
	}
	if link := article.HTMLURL(lang); link != "" {
		rel.Ident = releaseIdent(link)
	} else {
		rel.Ident = releaseIdent("scielo:" + article.CollectionAcronym() + ":" + pid)
	}
	// Release dates need full precision, the year is kept regardless.
	if date, err := article.PublicationDate(); err == nil {
		if len(date) == 10 {
			rel.ReleaseDate = date
		}
		if len(date) >= 4 {
			rel.ReleaseYear, _ = strconv.ParseInt(date[:4], 10, 64)
		}
	}
	if v, ok := DocumentTypeMap[article.DocumentType()]; ok {
		rel.ReleaseType = v
	} else {
		rel.ReleaseType = "article"
	}
	if l, ok := article.Permissions(); ok {
		rel.LicenseSlug = inferLicenseSlug(l.ID)
	}
	rel.Abstracts = abstracts(article, lang)
	if j, err := article.Journal(); err == nil {
		rel.Container = container(j)
		if names := j.PublisherNames(); len(names) > 0 {
			rel.Publisher = names[0]
		}
	}
	rel.Extra.Scielo = fatcat.Scielo{
		PID:              pid,
		Collection:       article.CollectionAcronym(),
		DocumentType:     article.DocumentType(),
		Languages:        article.Languages(),
		TranslatedTitles: article.TranslatedTitles(),
		Keywords:         article.Keywords(),
		Section:          article.OriginalSection(),
		Fulltexts:        article.Fulltexts(),
		Legend:           article.BibliographicLegends()[legend.Descriptive],
	}
	return &rel, nil
}

// validLanguage drops the marker of unknown ISO 639-1 codes.
func validLanguage(code string) string {
	if strings.HasPrefix(code, "#") {
		return ""
	}
	return code
}

func abstracts(article *scielo.Article, lang string) (result []fatcat.Abstract) {
	add := func(content, lang string) {
		if content = strings.TrimSpace(content); content == "" {
			return
		}
		result = append(result, fatcat.Abstract{
			Content:  content,
			Mimetype: "text/plain",
			SHA1:     hashString(content),
			Lang:     validLanguage(lang),
		})
	}
	add(article.OriginalAbstract(), lang)
	translated := article.TranslatedAbstracts()
	for _, l := range sortedKeys(translated) {
		add(translated[l], l)
	}
	return result
}

func contribs(article *scielo.Article) (result []fatcat.Contrib) {
	affs := make(map[string]string)
	for _, aff := range article.MixedAffiliations() {
		affs[aff.Index] = formatAffiliation(aff)
	}
	for i, author := range article.Authors() {
		contrib := fatcat.Contrib{
			GivenName: author.GivenNames,
			Surname:   author.Surname,
			Role:      "author",
			Index:     int64(i),
		}
		if contrib.GivenName != "" && contrib.Surname != "" {
			contrib.RawName = fmt.Sprintf("%s %s", contrib.GivenName, contrib.Surname)
		} else {
			contrib.RawName = contrib.Surname + contrib.GivenName
		}
		if orcid := cleanORCID(author.ORCID); orcid != "" {
			contrib.Creator = &fatcat.Creator{
				DisplayName: contrib.RawName,
				GivenName:   contrib.GivenName,
				Surname:     contrib.Surname,
				Orcid:       orcid,
			}
		}
		for _, x := range author.XrefAffiliations {
			v, ok := affs[x]
			if !ok || v == "" {
				continue
			}
			if contrib.RawAffiliation == "" {
				contrib.RawAffiliation = v
			} else {
				contrib.Extra.MoreAffiliation = append(contrib.Extra.MoreAffiliation, v)
			}
		}
		result = append(result, contrib)
	}
	return result
}

func formatAffiliation(aff resolve.Affiliation) string {
	var parts []string
	for _, v := range []string{aff.Institution, aff.OrgDiv1, aff.City, aff.State, aff.Country} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

func refs(article *scielo.Article) (result []fatcat.Ref) {
	for i, c := range article.Citations() {
		ref := fatcat.Ref{
			Index:   int64(i),
			Title:   c.Title(),
			Locator: c.Pages().Start,
		}
		if n := c.IndexNumber(); n > 0 {
			ref.Key = fmt.Sprintf("ref%d", n)
		}
		if source, ok := c.Source(); ok {
			ref.ContainerName = source
		}
		if y, err := strconv.ParseInt(c.PublicationYear(), 10, 64); err == nil {
			ref.Year = &y
		}
		extra := fatcat.RefExtra{
			Type:         string(c.PublicationType()),
			DOI:          cleanDOI(c.DOI()),
			Volume:       c.Volume(),
			Issue:        c.Issue(),
			Unstructured: c.MixedCitation(),
		}
		for _, a := range c.Authors() {
			extra.Authors = append(extra.Authors, a.Name())
		}
		extra.ISSN, _ = c.ISSN()
		extra.ISBN, _ = c.ISBN()
		extra.URL, _ = c.Link()
		if b, err := json.Marshal(extra); err == nil && string(b) != "{}" {
			ref.Extra = b
		}
		result = append(result, ref)
	}
	return result
}

func container(j *scielo.Journal) *fatcat.Container {
	issn := j.ISSN()
	c := &fatcat.Container{
		Name:          j.Title(),
		ContainerType: "journal",
		Issnp:         issn.Print,
		Issne:         issn.Electronic,
		Issnl:         firstNonEmpty(j.ScieloISSN(), issn.Any(resolve.PriorityPrint)),
	}
	if names := j.PublisherNames(); len(names) > 0 {
		c.Publisher = names[0]
	}
	if v, ok := containerStatus[j.CurrentStatus()]; ok {
		c.PublicationStatus = v
	}
	return c
}
