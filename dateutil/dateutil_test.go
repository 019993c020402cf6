package dateutil

import (
	"testing"
	"time"
)

func TestISODate(t *testing.T) {
	var cases = []struct {
		input  string
		result string
		err    bool
	}{
		{"2012-01-02", "2012-01-02", false},
		{"2016-05-12T14:22:10.123Z", "2016-05-12", false},
		{"2016-05-12 14:22:10", "2016-05-12", false},
		{" 2016-05-12 ", "2016-05-12", false},
		{"not a date", "", true},
	}
	for _, c := range cases {
		got, err := ISODate(c.input)
		if (err != nil) != c.err {
			t.Errorf("ISODate(%q): got err %v, want err %v", c.input, err, c.err)
		}
		if got != c.result {
			t.Errorf("ISODate(%q): got %q, want %q", c.input, got, c.result)
		}
	}
}

func TestOnOrAfter(t *testing.T) {
	cutoff := time.Date(2012, 1, 2, 15, 0, 0, 0, time.UTC)
	var cases = []struct {
		t      time.Time
		result bool
	}{
		{time.Date(2012, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2012, 1, 3, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2012, 1, 1, 23, 59, 59, 0, time.UTC), false},
	}
	for _, c := range cases {
		if got := OnOrAfter(c.t, cutoff); got != c.result {
			t.Errorf("OnOrAfter(%v): got %v, want %v", c.t, got, c.result)
		}
	}
	if got := EndOfDay(cutoff); got.Day() != 2 || got.Hour() != 23 {
		t.Errorf("EndOfDay: got %v", got)
	}
}

func TestParseUTC(t *testing.T) {
	got, err := Parse("2012-04-02")
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2012, 4, 2, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
