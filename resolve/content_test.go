package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/miku/isiskit/isis"
	"github.com/miku/isiskit/reftable"
)

var titles = []isis.Occurrence{
	isis.NewOccurrence("l", "pt", "_", "Título original"),
	isis.NewOccurrence("l", "en", "_", "English title"),
	isis.NewOccurrence("l", "pt", "_", "Outro título"),
	isis.NewOccurrence("l", "es", "_", "Título en español"),
	isis.NewOccurrence("l", "en", "_", "Second english title"),
	isis.NewOccurrence("_", "No language"),
	isis.NewOccurrence("l", "fr"),
}

func partitionTitles(format LanguageFormat) Partition[string] {
	tables := reftable.Default()
	lang := func(code string) string { return Language(tables, code, format) }
	contents := LanguageContents(titles, "l", isis.MainValue, lang)
	return PartitionContent(contents, lang("pt"))
}

func TestPartitionContent(t *testing.T) {
	p := partitionTitles(ISO6391)
	if !p.HasOriginal || p.Original != "Título original" {
		t.Errorf("original: got %q", p.Original)
	}
	want := map[string]string{"en": "English title", "es": "Título en español"}
	if diff := cmp.Diff(want, p.Translated); diff != "" {
		t.Errorf("translated (-want +got):\n%s", diff)
	}
}

func TestPartitionContentStable(t *testing.T) {
	a, b := partitionTitles(ISO6392), partitionTitles(ISO6392)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated partition differs:\n%s", diff)
	}
	raw, iso := partitionTitles(RawLanguage), partitionTitles(ISO6392)
	if raw.Original != iso.Original {
		t.Errorf("representation must not change the original")
	}
	if raw.Translated["en"] != iso.Translated["eng"] || raw.Translated["es"] != iso.Translated["spa"] {
		t.Errorf("representation must only change keys: %v, %v", raw.Translated, iso.Translated)
	}
	if len(raw.Translated) != len(iso.Translated) {
		t.Errorf("got %d and %d translations", len(raw.Translated), len(iso.Translated))
	}
}

func TestPartitionContentNoTranslations(t *testing.T) {
	p := PartitionContent([]Content[string]{{Lang: "pt", Value: "x"}}, "pt")
	if p.Translated != nil {
		t.Errorf("translations: got %v, want nil", p.Translated)
	}
	p = PartitionContent[string](nil, "pt")
	if p.HasOriginal || p.Translated != nil {
		t.Errorf("empty input: got %+v", p)
	}
}

func TestGroupContents(t *testing.T) {
	items := []Content[string]{
		{Lang: "pt", Value: "saúde"},
		{Lang: "en", Value: "health"},
		{Lang: "pt", Value: "epidemiologia"},
		{Lang: "en", Value: "epidemiology"},
	}
	want := []Content[[]string]{
		{Lang: "pt", Value: []string{"saúde", "epidemiologia"}},
		{Lang: "en", Value: []string{"health", "epidemiology"}},
	}
	if diff := cmp.Diff(want, GroupContents(items)); diff != "" {
		t.Errorf("GroupContents (-want +got):\n%s", diff)
	}
}
