package resolve

import "github.com/miku/isiskit/isis"

// PublicationType of a cited work.
type PublicationType string

const (
	TypeArticle    PublicationType = "article"
	TypeConference PublicationType = "conference"
	TypeThesis     PublicationType = "thesis"
	TypeBook       PublicationType = "book"
	TypePatent     PublicationType = "patent"
	TypeLink       PublicationType = "link"
	TypeUndefined  PublicationType = "undefined"
)

type classificationRule struct {
	match func(isis.Record) bool
	kind  PublicationType
}

func has(codes ...string) func(isis.Record) bool {
	return func(r isis.Record) bool {
		for _, c := range codes {
			if !r.Has(c) {
				return false
			}
		}
		return true
	}
}

// classificationRules are evaluated in order, the first match wins.
var classificationRules = []classificationRule{
	{has("v30"), TypeArticle},
	{has("v53"), TypeConference},
	{has("v18", "v51"), TypeThesis},
	{has("v18"), TypeBook},
	{has("v150"), TypePatent},
	{has("v37"), TypeLink},
}

// ClassifyCitation returns the publication type of a citation record.
func ClassifyCitation(r isis.Record) PublicationType {
	for _, rule := range classificationRules {
		if rule.match(r) {
			return rule.kind
		}
	}
	return TypeUndefined
}

// PublicationTypes lists all types ClassifyCitation can return.
func PublicationTypes() []PublicationType {
	return []PublicationType{
		TypeArticle, TypeConference, TypeThesis, TypeBook,
		TypePatent, TypeLink, TypeUndefined,
	}
}

// Is reports whether t is one of kinds.
func (t PublicationType) Is(kinds ...PublicationType) bool {
	for _, k := range kinds {
		if t == k {
			return true
		}
	}
	return false
}
