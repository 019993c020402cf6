package resolve

import (
	"strings"

	"github.com/miku/isiskit/isis"
)

// Content is a value tagged with its resolved language.
type Content[T any] struct {
	Lang  string
	Value T
}

// Partition splits language tagged content into the original language part
// and translations.
type Partition[T any] struct {
	Original    T
	HasOriginal bool
	// Translated is nil, if there are no translations.
	Translated map[string]T
}

// PartitionContent assigns the first item in the original language to
// Original and the first item of every other language to Translated. Later
// items for an already seen language are dropped.
func PartitionContent[T any](items []Content[T], original string) Partition[T] {
	var p Partition[T]
	for _, item := range items {
		if item.Lang == original {
			if !p.HasOriginal {
				p.Original, p.HasOriginal = item.Value, true
			}
			continue
		}
		if p.Translated == nil {
			p.Translated = make(map[string]T)
		}
		if _, ok := p.Translated[item.Lang]; !ok {
			p.Translated[item.Lang] = item.Value
		}
	}
	return p
}

// LanguageContents collects occurrences that carry both a language and a
// content subfield, with the language mapped through lang.
func LanguageContents(occs []isis.Occurrence, langSub, contentSub string, lang func(string) string) []Content[string] {
	var result []Content[string]
	for _, occ := range occs {
		var (
			l = strings.TrimSpace(occ.Value(langSub))
			v = occ.Value(contentSub)
		)
		if l == "" || strings.TrimSpace(v) == "" {
			continue
		}
		result = append(result, Content[string]{Lang: lang(l), Value: v})
	}
	return result
}

// GroupContents groups values per language, languages in order of first
// appearance, values in field order.
func GroupContents(items []Content[string]) []Content[[]string] {
	var (
		result   []Content[[]string]
		position = make(map[string]int)
	)
	for _, item := range items {
		i, ok := position[item.Lang]
		if !ok {
			i = len(result)
			position[item.Lang] = i
			result = append(result, Content[[]string]{Lang: item.Lang})
		}
		result[i].Value = append(result[i].Value, item.Value)
	}
	return result
}
