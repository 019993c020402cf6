package scielo

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/miku/isiskit/isis"
)

func TestIssue(t *testing.T) {
	doc := loadDocument(t)
	issue, err := NewIssue(doc.Issue, doc.Title)
	if err != nil {
		t.Fatal(err)
	}
	var cases = []struct {
		name string
		got  string
		want string
	}{
		{"volume", issue.Volume(), "46"},
		{"number", issue.Number(), "1"},
		{"order", issue.Order(), "20121"},
		{"type", issue.Type(), IssueRegular},
		{"start month", issue.StartMonth(), "Feb."},
		{"end month", issue.EndMonth(), "Mar."},
		{"publisher id", issue.PublisherID(), "S0034-891020120001"},
		{"print issn", issue.ISSN().Print, "1518-8787"},
		{"url", issue.URL("pt"), "http://www.scielo.br/scielo.php?script=sci_issuetoc&pid=S0034-891020120001&lng=pt"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, c.got, c.want)
		}
	}
	if d, err := issue.PublicationDate(); err != nil || d != "2012-02" {
		t.Errorf("publication date: got %v, %v", d, err)
	}
	if n := issue.TotalDocuments(); n != 25 {
		t.Errorf("total documents: got %d, want 25", n)
	}
	want := map[string]map[string]string{
		"RSP110": {"por": "Artigos Originais", "eng": "Original Articles"},
		"RSP120": {"por": "Revisões"},
	}
	if diff := cmp.Diff(want, issue.Sections()); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestIssueType(t *testing.T) {
	var cases = []struct {
		record isis.Record
		want   string
	}{
		{isis.Record{"v32": {isis.NewOccurrence(isis.MainValue, "ahead")}}, IssueAhead},
		{isis.Record{"v41": {isis.NewOccurrence(isis.MainValue, "pr")}}, IssuePressRelease},
		{isis.Record{"v32": {isis.NewOccurrence(isis.MainValue, "2")}, "v131": {isis.NewOccurrence(isis.MainValue, "1")}}, IssueSupplement},
		{isis.Record{"v32": {isis.NewOccurrence(isis.MainValue, "2")}, "v132": {isis.NewOccurrence(isis.MainValue, "0")}}, IssueSupplement},
		{isis.Record{"v32": {isis.NewOccurrence(isis.MainValue, "spe1")}}, IssueSpecial},
		{isis.Record{"v32": {isis.NewOccurrence(isis.MainValue, "3")}}, IssueRegular},
		{isis.Record{}, IssueRegular},
	}
	for i, c := range cases {
		issue, err := NewIssue(c.record, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got := issue.Type(); got != c.want {
			t.Errorf("[%d] got %v, want %v", i, got, c.want)
		}
	}
}

func TestIssueWithoutTitle(t *testing.T) {
	issue, err := NewIssue(isis.Record{
		"v880": {isis.NewOccurrence(isis.MainValue, "S1234-567820100002")},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := issue.Journal(); !errors.Is(err, isis.ErrMetadataUnavailable) {
		t.Errorf("journal: got %v, want %v", err, isis.ErrMetadataUnavailable)
	}
	if got := issue.PublisherID(); got != "S1234-567820100002" {
		t.Errorf("publisher id: got %q", got)
	}
	if got := issue.URL("en"); got != "" {
		t.Errorf("url: got %q, want empty", got)
	}
	if !issue.ISSN().IsZero() {
		t.Errorf("issn: got %v, want zero", issue.ISSN())
	}
	if _, err := NewIssue(nil, nil); !errors.Is(err, isis.ErrMissingRequiredField) {
		t.Errorf("got %v, want %v", err, isis.ErrMissingRequiredField)
	}
}
