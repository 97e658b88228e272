// Package palette holds the fixed color ramps the shell can switch between.
package palette

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Kind selects one of the two catalogs.
type Kind string

const (
	KindPrimary Kind = "primary"
	KindSurface Kind = "surface"
)

// Kinds lists catalog kinds in display order.
var Kinds = []Kind{KindPrimary, KindSurface}

// ParseKind converts user input into a Kind.
func ParseKind(value string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindPrimary:
		return KindPrimary, nil
	case KindSurface:
		return KindSurface, nil
	default:
		return "", fmt.Errorf("unknown palette kind %q (expected primary or surface)", value)
	}
}

// Step is a semantic lightness key such as "500".
type Step string

// Palette maps each lightness step to a 6-digit hex color.
type Palette map[Step]string

// Entry is one named ramp in a catalog.
type Entry struct {
	Name    string
	Palette Palette
}

// PrimarySteps are the steps every primary ramp defines. There is no "0".
var PrimarySteps = []Step{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// SurfaceSteps are the steps every surface ramp defines.
var SurfaceSteps = append([]Step{"0"}, PrimarySteps...)

// AccentStep is the step that backs --p-primary-color.
const AccentStep Step = "500"

var (
	primaryIndex = indexEntries(primaryEntries)
	surfaceIndex = indexEntries(surfaceEntries)
)

func indexEntries(entries []Entry) map[string]int {
	index := make(map[string]int, len(entries))
	for i, entry := range entries {
		index[entry.Name] = i
	}
	return index
}

// Steps returns the ordered step set of a catalog.
func Steps(kind Kind) []Step {
	if kind == KindSurface {
		return SurfaceSteps
	}
	return PrimarySteps
}

// Entries returns the entries of a catalog in display order.
// The returned slice must not be modified.
func Entries(kind Kind) []Entry {
	switch kind {
	case KindPrimary:
		return primaryEntries
	case KindSurface:
		return surfaceEntries
	default:
		return nil
	}
}

// Names returns entry names of a catalog in display order.
func Names(kind Kind) []string {
	entries := Entries(kind)
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return names
}

// Lookup resolves a named entry. The boolean is false when the name is not
// part of the catalog; callers treat that as a no-op.
func Lookup(kind Kind, name string) (Entry, bool) {
	var (
		index   map[string]int
		entries []Entry
	)
	switch kind {
	case KindPrimary:
		index, entries = primaryIndex, primaryEntries
	case KindSurface:
		index, entries = surfaceIndex, surfaceEntries
	default:
		return Entry{}, false
	}

	i, ok := index[name]
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}

// Has reports whether name exists in the catalog.
func Has(kind Kind, name string) bool {
	_, ok := Lookup(kind, name)
	return ok
}

// Suggest returns up to limit catalog names that fuzzy-match name, best first.
func Suggest(kind Kind, name string, limit int) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.Find(name, Names(kind))
	out := make([]string, 0, limit)
	for _, match := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, match.Str)
	}
	return out
}

// Ordered returns the palette's values in step order for kind.
func (p Palette) Ordered(kind Kind) []string {
	steps := Steps(kind)
	values := make([]string, 0, len(steps))
	for _, step := range steps {
		values = append(values, p[step])
	}
	return values
}
