package convert

import "testing"

func TestCleanDOI(t *testing.T) {
	var cases = []struct {
		raw    string
		result string
	}{
		{"", ""},
		{"10.1234/asdf ", "10.1234/asdf"},
		{"10.1590/S0034-89102012000100028", "10.1590/s0034-89102012000100028"},
		{"10.1037//0002-9432.72.1.50", "10.1037/0002-9432.72.1.50"},
		{"10.1026//1616-1041.3.2.86", "10.1026//1616-1041.3.2.86"},
		{"10.23750/abm.v88i2 -s.6506", ""},
		{"10.17167/mksz.2017.2.129–155", ""},
		{"http://doi.org/10.1234/asdf ", "10.1234/asdf"},
		{"https://dx.doi.org/10.1234/asdf ", "10.1234/asdf"},
		{"doi:10.1234/asdf ", "10.1234/asdf"},
		{"DOI: 10.1590/0102-311X00012345", "10.1590/0102-311x00012345"},
		{"doi:10.1234/ asdf ", ""},
		{"10.4149/gpb¬_2017042", ""},
		{"10.4025/diálogos.v17i2.36030", ""},
		{"10.30466/vrf.2019.98547.2350\u200e", ""},
		{"10.15673/атбп2312-3125.17/2014.26332", ""},
		{"S0034-89102012000100028", ""},
	}
	for _, c := range cases {
		if got := cleanDOI(c.raw); got != c.result {
			t.Errorf("cleanDOI(%q): got %q, want %q", c.raw, got, c.result)
		}
	}
}
