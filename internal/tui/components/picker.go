// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/themeshell/internal/palette"
	"github.com/opencode-ai/themeshell/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Picker stores selection state for the palette picker. Each catalog keeps
// its own cursor so switching sections does not lose the position.
type Picker struct {
	Query   string
	Section palette.Kind
	index   map[palette.Kind]int
}

// NewPicker creates a picker positioned on the given selection.
func NewPicker(primary, surface string) *Picker {
	p := &Picker{
		Section: palette.KindPrimary,
		index:   make(map[palette.Kind]int, len(palette.Kinds)),
	}
	p.Focus(palette.KindPrimary, primary)
	p.Focus(palette.KindSurface, surface)
	return p
}

// Focus moves the cursor of kind onto name, if it is visible.
func (p *Picker) Focus(kind palette.Kind, name string) {
	for i, entry := range p.items(kind) {
		if entry.Name == name {
			p.index[kind] = i
			return
		}
	}
}

// NextSection cycles the active catalog.
func (p *Picker) NextSection() {
	if p.Section == palette.KindPrimary {
		p.Section = palette.KindSurface
	} else {
		p.Section = palette.KindPrimary
	}
}

// Index returns the cursor position in the active section.
func (p *Picker) Index() int {
	return p.index[p.Section]
}

// Move shifts the selection within the active section, wrapping at both ends.
func (p *Picker) Move(delta int) {
	items := p.items(p.Section)
	if len(items) == 0 {
		p.index[p.Section] = 0
		return
	}
	idx := p.index[p.Section]
	if idx < 0 || idx >= len(items) {
		idx = 0
	}
	idx = (idx + delta) % len(items)
	if idx < 0 {
		idx += len(items)
	}
	p.index[p.Section] = idx
}

// SetQuery filters both sections and resets their cursors.
func (p *Picker) SetQuery(query string) {
	p.Query = query
	for _, kind := range palette.Kinds {
		p.index[kind] = 0
	}
}

// Selected returns the entry under the cursor of the active section.
func (p *Picker) Selected() (palette.Entry, bool) {
	items := p.items(p.Section)
	idx := p.index[p.Section]
	if idx < 0 || idx >= len(items) {
		return palette.Entry{}, false
	}
	return items[idx], true
}

// Render renders the picker lines. current names the applied entry per kind.
func (p *Picker) Render(styleSet styles.Styles, current map[palette.Kind]string) []string {
	lines := []string{
		styleSet.Muted.Render("Tab switches catalogs. Enter applies. / filters."),
	}
	if p.Query != "" {
		lines = append(lines, styleSet.Text.Render(fmt.Sprintf("> %s", p.Query)))
	}

	for i, kind := range palette.Kinds {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, p.renderSection(styleSet, kind, current[kind])...)
	}
	return lines
}

func (p *Picker) renderSection(styleSet styles.Styles, kind palette.Kind, current string) []string {
	active := kind == p.Section
	headingStyle := styleSet.Muted
	if active {
		headingStyle = styleSet.Accent
	}
	lines := []string{headingStyle.Render(strings.ToUpper(string(kind)))}

	items := p.items(kind)
	if len(items) == 0 {
		return append(lines, styleSet.Muted.Render("  (none)"))
	}

	for idx, entry := range items {
		marker := " "
		if entry.Name == current {
			marker = "*"
		}
		label := fmt.Sprintf("%s %-8s ", marker, entry.Name)
		ramp := RenderRamp(kind, entry.Palette)
		if active && idx == p.index[kind] {
			lines = append(lines, styleSet.Focus.Render(">"+label)+ramp)
			continue
		}
		lines = append(lines, styleSet.Text.Render(" "+label)+ramp)
	}
	return lines
}

// RenderRamp renders one swatch cell per step.
func RenderRamp(kind palette.Kind, p palette.Palette) string {
	var b strings.Builder
	for _, hex := range p.Ordered(kind) {
		b.WriteString(styles.Swatch(hex, "  "))
	}
	return b.String()
}

func (p *Picker) items(kind palette.Kind) []palette.Entry {
	entries := palette.Entries(kind)
	query := strings.ToLower(strings.TrimSpace(p.Query))
	if query == "" {
		return entries
	}

	matches := fuzzy.Find(query, palette.Names(kind))
	filtered := make([]palette.Entry, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, entries[match.Index])
	}
	return filtered
}
