package normal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLocation(t *testing.T) {
	var cases = []struct {
		input  string
		result string
	}{
		{"São Paulo", "SAO PAULO"},
		{"  Rio  de Janeiro ", "RIO DE JANEIRO"},
		{"Bogotá, D.C.", "BOGOTA DC"},
		{"Mato Grosso do Sul", "MATO GROSSO DO SUL"},
		{"Guinea-Bissau", "GUINEA-BISSAU"},
		{"12345", ""},
	}
	for _, c := range cases {
		if got := Location.Normalize(c.input); got != c.result {
			t.Errorf("Location(%q): got %q, want %q", c.input, got, c.result)
		}
	}
}

func TestRemoveDiacritics(t *testing.T) {
	var cases = []struct {
		input  string
		result string
	}{
		{"", ""},
		{"Ceará", "Ceara"},
		{"Goiânia", "Goiania"},
		{"niño", "nino"},
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := RemoveDiacritics(c.input); got != c.result {
			t.Errorf("RemoveDiacritics(%q): got %q, want %q", c.input, got, c.result)
		}
	}
}

func TestClean(t *testing.T) {
	var cases = []struct {
		input  string
		result string
	}{
		{"S&atilde;o Paulo", "São Paulo"},
		{"<i>In vitro</i> study\nof cells", "In vitro study of cells"},
		{"a &amp; b", "a & b"},
		{"no markup", "no markup"},
	}
	for _, c := range cases {
		if got := Clean(c.input); got != c.result {
			t.Errorf("Clean(%q): got %q, want %q", c.input, got, c.result)
		}
	}
}

func TestLinks(t *testing.T) {
	s := `This work is licensed under a <a href="http://creativecommons.org/licenses/by-nc/4.0/" rel="license">Creative Commons</a> license.`
	want := []string{"http://creativecommons.org/licenses/by-nc/4.0/"}
	if diff := cmp.Diff(want, Links(s)); diff != "" {
		t.Errorf("Links (-want +got):\n%s", diff)
	}
}
