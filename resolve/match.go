package resolve

import (
	"strings"

	"github.com/miku/isiskit/normal"
)

// StateTable maps state names to abbreviations.
type StateTable interface {
	StateAbbreviation(name string) (string, bool)
}

var (
	stateSuffixes = []string{" PROVINCE", " STATE"}
	statePrefixes = []string{"PROVINCIA DE ", "STATE OF "}
)

// IsAMatch compares two free form location strings, ignoring case,
// diacritics and anything but letters, spaces and hyphens.
func IsAMatch(a, b string) bool {
	return normal.Location.Normalize(a) == normal.Location.Normalize(b)
}

// IsAStateMatch is IsAMatch for state names, which additionally ignores
// "state of" and "province" decorations and treats a name and its
// abbreviation as equal, e.g. "São Paulo" and "SP".
func IsAStateMatch(states StateTable, a, b string) bool {
	if IsAMatch(a, b) {
		return true
	}
	na, nb := stripState(normal.Location.Normalize(a)), stripState(normal.Location.Normalize(b))
	if na == nb {
		return true
	}
	if v, ok := states.StateAbbreviation(na); ok {
		na = v
	}
	if v, ok := states.StateAbbreviation(nb); ok {
		nb = v
	}
	return na == nb
}

func stripState(s string) string {
	for _, suffix := range stateSuffixes {
		s = strings.TrimSuffix(s, suffix)
	}
	for _, prefix := range statePrefixes {
		s = strings.TrimPrefix(s, prefix)
	}
	return strings.TrimSpace(s)
}
