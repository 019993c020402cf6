package isis

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/segmentio/encoding/json"
)

func TestDecodeDocument(t *testing.T) {
	var doc = []byte(`{
		"article": {
			"v880": [{"_": "S0034-89102012000100001"}],
			"v14": [{"f": "229"}, {"l": "232"}],
			"v35": ["PRINT"],
			"v540": [{"t": "text", "l": "en", "x": [{"a": 1}]}],
			"v999": {"_": "single"}
		},
		"title": {},
		"doi": "10.1590/S0034-89102012000100001",
		"fulltexts": {"pdf": {"en": "http://example.org/a.pdf"}}
	}`)
	d, err := DecodeDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	if d.Issue != nil {
		t.Errorf("issue namespace: got %v, want nil", d.Issue)
	}
	if d.Title == nil {
		t.Errorf("title namespace: got nil, want empty record")
	}
	if got := d.Article.First("v880", MainValue, ""); got != "S0034-89102012000100001" {
		t.Errorf("v880: got %s", got)
	}
	if got := d.Article.First("v35", MainValue, ""); got != "PRINT" {
		t.Errorf("bare string occurrence: got %q, want PRINT", got)
	}
	if got := d.Article.First("v999", MainValue, ""); got != "single" {
		t.Errorf("single occurrence: got %q, want single", got)
	}
	occs := d.Article.Occurrences("v14")
	if len(occs) != 2 {
		t.Fatalf("v14: got %d occurrences, want 2", len(occs))
	}
	if occs[0].Value("f") != "229" || occs[1].Value("l") != "232" {
		t.Errorf("v14 order not preserved: %v", occs)
	}
	lic := d.Article.Occurrences("v540")[0]
	if _, ok := lic.Get("x"); ok {
		t.Errorf("opaque subfield must not be readable as string")
	}
	if _, ok := lic.Raw("x"); !ok {
		t.Errorf("opaque subfield lost")
	}
	if diff := cmp.Diff([]string{"l", "t", "x"}, lic.Subfields()); diff != "" {
		t.Errorf("subfields (-want +got):\n%s", diff)
	}
	if got := d.Fulltexts["pdf"]["en"]; got != "http://example.org/a.pdf" {
		t.Errorf("fulltexts: got %q", got)
	}
}

func TestRecordAccess(t *testing.T) {
	r := Record{
		"v10": {
			NewOccurrence("s", "Silva", "n", "Maria"),
			NewOccurrence("s", "Souza"),
		},
		"v40": {NewOccurrence("_", "pt")},
	}
	var cases = []struct {
		code, sub, def string
		result         string
	}{
		{"v10", "s", "", "Silva"},
		{"v10", "n", "", "Maria"},
		{"v10", "x", "none", "none"},
		{"v11", "_", "none", "none"},
		{"v40", "_", "", "pt"},
	}
	for _, c := range cases {
		if got := r.First(c.code, c.sub, c.def); got != c.result {
			t.Errorf("First(%s, %s): got %q, want %q", c.code, c.sub, got, c.result)
		}
	}
	if diff := cmp.Diff([]string{"Silva", "Souza"}, r.Values("v10", "s")); diff != "" {
		t.Errorf("Values (-want +got):\n%s", diff)
	}
	if got := r.Values("v10", "n"); len(got) != 1 {
		t.Errorf("Values must skip occurrences without subfield, got %v", got)
	}
	if r.Occurrences("v404") != nil {
		t.Errorf("absent field must yield no occurrences")
	}
}

func TestRequireFirst(t *testing.T) {
	r := Record{"v880": {NewOccurrence("x", "1")}}
	if _, err := r.RequireFirst("v880", "x"); err != nil {
		t.Fatalf("got %v, want nil", err)
	}
	_, err := r.RequireFirst("v880", MainValue)
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("missing subfield: got %v, want ErrMissingRequiredField", err)
	}
	var mfe *MissingFieldError
	if !errors.As(err, &mfe) || mfe.Subfield != MainValue {
		t.Errorf("got %#v, want subfield detail", err)
	}
	_, err = r.RequireFirst("v702", MainValue)
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("missing field: got %v, want ErrMissingRequiredField", err)
	}
	if errors.Is(err, ErrMetadataUnavailable) {
		t.Errorf("missing field must not be reported as unavailable metadata")
	}
}

func TestOccurrenceRoundtrip(t *testing.T) {
	var occ Occurrence
	if err := occ.UnmarshalJSON([]byte(`{"a":"x","n":[1,2]}`)); err != nil {
		t.Fatal(err)
	}
	b, err := occ.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var got, want map[string]interface{}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`{"a":"x","n":[1,2]}`), &want); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("roundtrip (-want +got):\n%s", diff)
	}
}
