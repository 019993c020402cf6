package main

import "testing"

func TestProcNormAdapt(t *testing.T) {
	var cases = []struct {
		algo  string
		input string
		want  string
	}{
		{"location", "São Paulo (SP)", "SAO PAULO SP\n"},
		{"clean", "S&atilde;o <b>Paulo</b>", "São Paulo\n"},
		{"nodia", "Bogotá", "Bogota\n"},
		{"space", "  a   b ", "a b\n"},
	}
	for _, c := range cases {
		n, ok := normalizerByName(c.algo)
		if !ok {
			t.Fatalf("unknown normalizer: %s", c.algo)
		}
		got, err := procNormAdapt(n)([][]byte{[]byte(c.input)})
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != c.want {
			t.Errorf("%s: got %q, want %q", c.algo, got, c.want)
		}
	}
	if _, ok := normalizerByName("nope"); ok {
		t.Errorf("expected unknown normalizer")
	}
}
