package palette

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestCatalogInvariants(t *testing.T) {
	for _, kind := range Kinds {
		seen := make(map[string]bool)
		for _, entry := range Entries(kind) {
			if seen[entry.Name] {
				t.Fatalf("%s: duplicate entry %q", kind, entry.Name)
			}
			seen[entry.Name] = true

			if len(entry.Palette) != len(Steps(kind)) {
				t.Fatalf("%s/%s: expected %d steps, got %d", kind, entry.Name, len(Steps(kind)), len(entry.Palette))
			}
			for _, step := range Steps(kind) {
				value, ok := entry.Palette[step]
				if !ok {
					t.Fatalf("%s/%s: missing step %s", kind, entry.Name, step)
				}
				if len(value) != 7 || value != strings.ToLower(value) {
					t.Fatalf("%s/%s/%s: malformed hex %q", kind, entry.Name, step, value)
				}
				if _, err := colorful.Hex(value); err != nil {
					t.Fatalf("%s/%s/%s: %v", kind, entry.Name, step, err)
				}
			}
		}
	}
}

func TestSurfaceStepZeroIsWhite(t *testing.T) {
	for _, entry := range Entries(KindSurface) {
		if entry.Palette["0"] != "#ffffff" {
			t.Fatalf("%s: step 0 = %q", entry.Name, entry.Palette["0"])
		}
	}
	for _, entry := range Entries(KindPrimary) {
		if _, ok := entry.Palette["0"]; ok {
			t.Fatalf("%s: primary ramps have no step 0", entry.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	entry, ok := Lookup(KindPrimary, "emerald")
	if !ok {
		t.Fatal("expected emerald")
	}
	if entry.Palette[AccentStep] != "#10b981" {
		t.Fatalf("unexpected emerald 500: %q", entry.Palette[AccentStep])
	}

	if _, ok := Lookup(KindSurface, "emerald"); ok {
		t.Fatal("emerald is not a surface")
	}
	if _, ok := Lookup(KindPrimary, "nope"); ok {
		t.Fatal("expected miss for unknown name")
	}
	if _, ok := Lookup(Kind("other"), "rose"); ok {
		t.Fatal("expected miss for unknown kind")
	}
	if !Has(KindSurface, "slate") || !Has(KindPrimary, "rose") {
		t.Fatal("defaults must exist in the catalogs")
	}
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind(" Surface ")
	if err != nil || kind != KindSurface {
		t.Fatalf("ParseKind: %v %q", err, kind)
	}
	if _, err := ParseKind("accent"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestSuggest(t *testing.T) {
	got := Suggest(KindPrimary, "emrald", 3)
	if len(got) == 0 || got[0] != "emerald" {
		t.Fatalf("unexpected suggestions: %v", got)
	}
	if Suggest(KindPrimary, "", 3) != nil {
		t.Fatal("empty input yields no suggestions")
	}
}

func TestOrdered(t *testing.T) {
	entry, _ := Lookup(KindSurface, "slate")
	values := entry.Palette.Ordered(KindSurface)
	if len(values) != 12 || values[0] != "#ffffff" || values[11] != "#020617" {
		t.Fatalf("unexpected order: %v", values)
	}
}
