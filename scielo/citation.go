package scielo

import (
	"strconv"
	"strings"

	"github.com/miku/isiskit/isis"
	"github.com/miku/isiskit/normal"
	"github.com/miku/isiskit/resolve"
)

// Citation is a reference of an article. Type specific accessors return
// ("", false) for citations of another publication type.
type Citation struct {
	data isis.Record
	s    *settings
	kind resolve.PublicationType
}

// NewCitation creates a citation from a single reference record.
func NewCitation(r isis.Record, opts ...Option) (*Citation, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &isis.MissingFieldError{Field: "citation"}
	}
	return newCitation(r, s), nil
}

func newCitation(r isis.Record, s *settings) *Citation {
	return &Citation{data: r, s: s, kind: resolve.ClassifyCitation(r)}
}

// Record returns the underlying reference record.
func (c *Citation) Record() isis.Record { return c.data }

func (c *Citation) PublicationType() resolve.PublicationType { return c.kind }

// gated returns the decoded main value of code, if the citation is of one
// of the given kinds and the field is present.
func (c *Citation) gated(code string, kinds ...resolve.PublicationType) (string, bool) {
	if !c.kind.Is(kinds...) {
		return "", false
	}
	v := text(c.data, code)
	return v, v != ""
}

// Source is the journal, book title or conference the work appeared in.
func (c *Citation) Source() (string, bool) {
	switch c.kind {
	case resolve.TypeArticle:
		return c.gated("v30", resolve.TypeArticle)
	case resolve.TypeBook:
		return c.gated("v18", resolve.TypeBook)
	case resolve.TypeConference:
		return c.gated("v53", resolve.TypeConference)
	}
	return "", false
}

func (c *Citation) ArticleTitle() (string, bool) { return c.gated("v12", resolve.TypeArticle) }

func (c *Citation) ChapterTitle() (string, bool) { return c.gated("v12", resolve.TypeBook) }

func (c *Citation) ThesisTitle() (string, bool) { return c.gated("v18", resolve.TypeThesis) }

func (c *Citation) ThesisDegree() (string, bool) { return c.gated("v51", resolve.TypeThesis) }

func (c *Citation) ConferenceName() (string, bool) {
	return c.gated("v53", resolve.TypeConference)
}

func (c *Citation) ConferenceSponsor() (string, bool) {
	return c.gated("v52", resolve.TypeConference)
}

// ConferenceLocation joins city v56 and country v57.
func (c *Citation) ConferenceLocation() (string, bool) {
	if !c.kind.Is(resolve.TypeConference) {
		return "", false
	}
	var parts []string
	for _, code := range []string{"v56", "v57"} {
		if v := text(c.data, code); v != "" {
			parts = append(parts, v)
		}
	}
	v := strings.Join(parts, ", ")
	return v, v != ""
}

func (c *Citation) ConferenceEdition() (string, bool) {
	return c.gated("v54", resolve.TypeConference)
}

func (c *Citation) Link() (string, bool) { return c.gated("v37", resolve.TypeLink) }

func (c *Citation) LinkTitle() (string, bool) { return c.gated("v12", resolve.TypeLink) }

// LinkAccessDate is the normalized v109 date.
func (c *Citation) LinkAccessDate() (string, bool) {
	if !c.kind.Is(resolve.TypeLink) {
		return "", false
	}
	d, err := optionalDate(c.data, "v109")
	if err != nil || d == "" {
		return "", false
	}
	return d, true
}

func (c *Citation) ISSN() (string, bool) { return c.gated("v35", resolve.TypeArticle) }

func (c *Citation) ISBN() (string, bool) {
	return c.gated("v69", resolve.TypeBook, resolve.TypeThesis, resolve.TypeConference)
}

func (c *Citation) PatentTitle() (string, bool) { return c.gated("v150", resolve.TypePatent) }

// Title is the most specific title for any type.
func (c *Citation) Title() string {
	for _, f := range []func() (string, bool){
		c.ArticleTitle, c.ChapterTitle, c.ThesisTitle, c.LinkTitle, c.PatentTitle,
	} {
		if v, ok := f(); ok {
			return v
		}
	}
	if v, ok := c.Source(); ok {
		return v
	}
	return text(c.data, "v12")
}

// IndexNumber is the position in the reference list, v701.
func (c *Citation) IndexNumber() int {
	n, err := strconv.Atoi(text(c.data, "v701"))
	if err != nil {
		return 0
	}
	return n
}

func (c *Citation) PublisherID() string { return text(c.data, "v880") }

func (c *Citation) AnalyticAuthors() []Author { return authors(c.data, "v10") }

func (c *Citation) MonographicAuthors() []Author { return authors(c.data, "v16") }

// Authors are the analytic authors, else the monographic ones.
func (c *Citation) Authors() []Author {
	if a := c.AnalyticAuthors(); len(a) > 0 {
		return a
	}
	return c.MonographicAuthors()
}

func (c *Citation) Institutions() []string { return texts(c.data, "v11") }

func (c *Citation) Publisher() string { return text(c.data, "v62") }

// PublisherAddress joins city v66 and country v67.
func (c *Citation) PublisherAddress() string {
	var parts []string
	for _, code := range []string{"v66", "v67"} {
		if v := text(c.data, code); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

func (c *Citation) Edition() string { return text(c.data, "v63") }

func (c *Citation) Volume() string { return text(c.data, "v31") }

func (c *Citation) Issue() string { return text(c.data, "v32") }

// Pages from v514, else v14.
func (c *Citation) Pages() resolve.Pages {
	if c.data.Has("v514") {
		if p := resolve.ResolvePages(c.data.Occurrences("v514")); p != (resolve.Pages{}) {
			return p
		}
	}
	return resolve.ResolvePages(c.data.Occurrences("v14"))
}

func (c *Citation) Date() (string, error) { return optionalDate(c.data, "v65") }

func (c *Citation) PublicationYear() string {
	d, err := c.Date()
	if err != nil || len(d) < 4 {
		return ""
	}
	return d[:4]
}

func (c *Citation) DOI() string { return text(c.data, "v237") }

// MixedCitation is the reference as printed, markup removed.
func (c *Citation) MixedCitation() string {
	return normal.Clean(c.data.First("v704", isis.MainValue, ""))
}

func (c *Citation) Comment() string { return text(c.data, "v61") }

func (c *Citation) Series() string { return text(c.data, "v25") }
