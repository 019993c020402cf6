// Package isis provides safe access to ISIS tagged field records, decoded
// from JSON: a field code (v14, v935, ...) maps to an ordered list of
// occurrences, each occurrence maps subfield codes to values. The subfield
// code "_" holds the main value of an occurrence.
package isis

import (
	"bytes"
	"sort"

	"github.com/segmentio/encoding/json"
)

// MainValue is the subfield code of the unlabeled value of an occurrence.
const MainValue = "_"

// Occurrence is one repetition of a field. String subfields are accessible
// by code, any other JSON value (e.g. nested license blocks) is kept as raw
// JSON and never coerced.
type Occurrence struct {
	values map[string]string
	opaque map[string]json.RawMessage
}

// NewOccurrence creates an occurrence from alternating subfield codes and
// values, e.g. NewOccurrence("f", "229", "l", "232"). A trailing code
// without value is ignored.
func NewOccurrence(kv ...string) Occurrence {
	o := Occurrence{values: make(map[string]string, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		o.values[kv[i]] = kv[i+1]
	}
	return o
}

// Get returns the string value of a subfield and whether it was present.
func (o Occurrence) Get(sub string) (string, bool) {
	v, ok := o.values[sub]
	return v, ok
}

// Value returns the string value of a subfield or the empty string.
func (o Occurrence) Value(sub string) string {
	return o.values[sub]
}

// Has reports whether a subfield is present, in string or opaque form.
func (o Occurrence) Has(sub string) bool {
	if _, ok := o.values[sub]; ok {
		return true
	}
	_, ok := o.opaque[sub]
	return ok
}

// Raw returns a non-string subfield as raw JSON.
func (o Occurrence) Raw(sub string) (json.RawMessage, bool) {
	v, ok := o.opaque[sub]
	return v, ok
}

// Subfields returns all subfield codes present, sorted.
func (o Occurrence) Subfields() []string {
	var codes []string
	for k := range o.values {
		codes = append(codes, k)
	}
	for k := range o.opaque {
		codes = append(codes, k)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of subfields.
func (o Occurrence) Len() int {
	return len(o.values) + len(o.opaque)
}

// UnmarshalJSON accepts an object of subfields or, for legacy exports, a
// bare string that is taken as the main value.
func (o *Occurrence) UnmarshalJSON(p []byte) error {
	p = bytes.TrimSpace(p)
	o.values = make(map[string]string)
	o.opaque = nil
	switch {
	case len(p) == 0 || bytes.Equal(p, []byte("null")):
		return nil
	case p[0] == '"':
		var s string
		if err := json.Unmarshal(p, &s); err != nil {
			return err
		}
		o.values[MainValue] = s
		return nil
	case p[0] != '{':
		o.opaque = map[string]json.RawMessage{MainValue: append(json.RawMessage(nil), p...)}
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(p, &m); err != nil {
		return err
	}
	for k, v := range m {
		v = bytes.TrimSpace(v)
		switch {
		case len(v) == 0 || bytes.Equal(v, []byte("null")):
			continue
		case v[0] == '"':
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return err
			}
			o.values[k] = s
		default:
			if o.opaque == nil {
				o.opaque = make(map[string]json.RawMessage)
			}
			o.opaque[k] = v
		}
	}
	return nil
}

// MarshalJSON writes the occurrence back as an object.
func (o Occurrence) MarshalJSON() ([]byte, error) {
	m := make(map[string]json.RawMessage, o.Len())
	for k, v := range o.values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		m[k] = b
	}
	for k, v := range o.opaque {
		m[k] = v
	}
	return json.Marshal(m)
}

// Record maps field codes to their occurrences, in the order received.
type Record map[string][]Occurrence

// UnmarshalJSON decodes a record, tolerating fields given as a single
// occurrence instead of a list.
func (r *Record) UnmarshalJSON(p []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(p, &m); err != nil {
		return err
	}
	if m == nil {
		*r = nil
		return nil
	}
	rec := make(Record, len(m))
	for k, v := range m {
		v = bytes.TrimSpace(v)
		if len(v) > 0 && v[0] == '[' {
			var occs []Occurrence
			if err := json.Unmarshal(v, &occs); err != nil {
				return err
			}
			rec[k] = occs
			continue
		}
		var occ Occurrence
		if err := occ.UnmarshalJSON(v); err != nil {
			return err
		}
		rec[k] = []Occurrence{occ}
	}
	*r = rec
	return nil
}

// Has reports whether the field has at least one occurrence.
func (r Record) Has(code string) bool {
	return len(r[code]) > 0
}

// Occurrences returns all occurrences of a field, or nil.
func (r Record) Occurrences(code string) []Occurrence {
	return r[code]
}

// FirstOK returns the subfield value of the first occurrence of a field.
func (r Record) FirstOK(code, sub string) (string, bool) {
	occs := r[code]
	if len(occs) == 0 {
		return "", false
	}
	return occs[0].Get(sub)
}

// First returns the subfield value of the first occurrence, or def.
func (r Record) First(code, sub, def string) string {
	if v, ok := r.FirstOK(code, sub); ok {
		return v
	}
	return def
}

// RequireFirst is like FirstOK, but absence is an error.
func (r Record) RequireFirst(code, sub string) (string, error) {
	if !r.Has(code) {
		return "", &MissingFieldError{Field: code}
	}
	v, ok := r.FirstOK(code, sub)
	if !ok {
		return "", &MissingFieldError{Field: code, Subfield: sub}
	}
	return v, nil
}

// Values collects a subfield across all occurrences of a field, skipping
// occurrences that lack it.
func (r Record) Values(code, sub string) []string {
	var result []string
	for _, occ := range r[code] {
		if v, ok := occ.Get(sub); ok {
			result = append(result, v)
		}
	}
	return result
}

// Document is an article level export, aggregating sibling namespaces. A nil
// namespace is absent, an empty one is present but blank.
type Document struct {
	Article        Record                       `json:"article,omitempty"`
	Title          Record                       `json:"title,omitempty"`
	Issue          Record                       `json:"issue,omitempty"`
	Citations      []Record                     `json:"citations,omitempty"`
	DOI            string                       `json:"doi,omitempty"`
	Collection     string                       `json:"collection,omitempty"`
	License        string                       `json:"license,omitempty"`
	CreatedAt      string                       `json:"created_at,omitempty"`
	UpdatedAt      string                       `json:"updated_at,omitempty"`
	ProcessingDate string                       `json:"processing_date,omitempty"`
	Body           map[string]string            `json:"body,omitempty"`
	Fulltexts      map[string]map[string]string `json:"fulltexts,omitempty"`
}

// DecodeDocument decodes a single JSON document.
func DecodeDocument(p []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(p, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
