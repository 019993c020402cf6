package resolve

import "github.com/miku/isiskit/isis"

const (
	MediumPrint  = "PRINT"
	MediumOnline = "ONLIN" // as found in v435 type subfield

	PriorityElectronic = "electronic"
	PriorityPrint      = "print"
)

// ISSN holds the resolved print and electronic ISSN, empty if unresolved.
type ISSN struct {
	Print      string
	Electronic string
}

// ResolveISSN applies the first matching rule of:
//
//  1. v435 present: each occurrence with t=PRINT or t=ONLIN sets the
//     respective ISSN, other types are ignored
//  2. v35 absent: nothing is resolved
//  3. v935 absent: v400 goes into the slot named by v35
//  4. v935 goes into the slot named by v35; if v400 differs, it fills the
//     other slot
func ResolveISSN(r isis.Record) ISSN {
	var result ISSN
	if r.Has("v435") {
		for _, occ := range r.Occurrences("v435") {
			switch occ.Value("t") {
			case MediumPrint:
				result.Print = occ.Value(isis.MainValue)
			case MediumOnline:
				result.Electronic = occ.Value(isis.MainValue)
			}
		}
		return result
	}
	if !r.Has("v35") {
		return result
	}
	var (
		medium = r.First("v35", isis.MainValue, "")
		legacy = r.First("v400", isis.MainValue, "")
	)
	if !r.Has("v935") {
		if medium == MediumPrint {
			result.Print = legacy
		} else {
			result.Electronic = legacy
		}
		return result
	}
	current := r.First("v935", isis.MainValue, "")
	if medium == MediumPrint {
		result.Print = current
		if current != legacy {
			result.Electronic = legacy
		}
	} else {
		result.Electronic = current
		if current != legacy {
			result.Print = legacy
		}
	}
	return result
}

// Any returns one ISSN, preferring electronic for priority "electronic" and
// print otherwise, falling back to the other one.
func (i ISSN) Any(priority string) string {
	if priority == PriorityElectronic {
		if i.Electronic != "" {
			return i.Electronic
		}
		return i.Print
	}
	if i.Print != "" {
		return i.Print
	}
	return i.Electronic
}

// IsZero reports whether neither ISSN is known.
func (i ISSN) IsZero() bool {
	return i.Print == "" && i.Electronic == ""
}
