// Package scope models the root rendering scope the shell's web layer reads
// its CSS custom properties and stylesheet variant from.
package scope

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DefaultDarkClass is the root class token that selects the dark stylesheet.
const DefaultDarkClass = "p-dark"

// SelectorRoot is the selector of the base stylesheet rule.
const SelectorRoot = ":root"

// ClassSelector returns the selector of a rule that only applies while the
// root carries class.
func ClassSelector(class string) string {
	return SelectorRoot + "." + class
}

// MutationKind says what part of the scope changed.
type MutationKind string

const (
	MutationProperty MutationKind = "property"
	MutationRule     MutationKind = "rule"
	MutationClass    MutationKind = "class"
)

// Mutation describes one change to the scope.
type Mutation struct {
	Kind     MutationKind
	Selector string // set for MutationRule
	Name     string // property name or class token
	Value    string // new value; "" for removals
}

// Root is the document root: stylesheet rules, inline custom properties and
// a class list. The computed value of a property is the inline value if set,
// else the value from a class rule whose class is present, else the base rule.
type Root struct {
	mu        sync.RWMutex
	rules     map[string]map[string]string
	inline    map[string]string
	classes   map[string]bool
	observers map[int]func(Mutation)
	nextID    int
}

// NewRoot returns an empty scope.
func NewRoot() *Root {
	return &Root{
		rules:     make(map[string]map[string]string),
		inline:    make(map[string]string),
		classes:   make(map[string]bool),
		observers: make(map[int]func(Mutation)),
	}
}

// Property returns the computed, trimmed value of a custom property, or "".
func (r *Root) Property(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return strings.TrimSpace(r.computedLocked(name))
}

func (r *Root) computedLocked(name string) string {
	if value, ok := r.inline[name]; ok {
		return value
	}
	for _, class := range r.sortedClassesLocked() {
		if value, ok := r.rules[ClassSelector(class)][name]; ok {
			return value
		}
	}
	return r.rules[SelectorRoot][name]
}

// SetProperty sets an inline custom property on the root.
func (r *Root) SetProperty(name, value string) {
	r.mu.Lock()
	r.inline[name] = value
	r.mu.Unlock()
	r.notify(Mutation{Kind: MutationProperty, Name: name, Value: value})
}

// RemoveProperty clears an inline custom property.
func (r *Root) RemoveProperty(name string) {
	r.mu.Lock()
	_, ok := r.inline[name]
	delete(r.inline, name)
	r.mu.Unlock()
	if ok {
		r.notify(Mutation{Kind: MutationProperty, Name: name})
	}
}

// SetRule sets a declaration in the stylesheet rule for selector.
func (r *Root) SetRule(selector, name, value string) {
	r.mu.Lock()
	rule, ok := r.rules[selector]
	if !ok {
		rule = make(map[string]string)
		r.rules[selector] = rule
	}
	rule[name] = value
	r.mu.Unlock()
	r.notify(Mutation{Kind: MutationRule, Selector: selector, Name: name, Value: value})
}

// AddClass adds a class token to the root.
func (r *Root) AddClass(class string) {
	r.mu.Lock()
	if r.classes[class] {
		r.mu.Unlock()
		return
	}
	r.classes[class] = true
	r.mu.Unlock()
	r.notify(Mutation{Kind: MutationClass, Name: class, Value: class})
}

// RemoveClass removes a class token from the root.
func (r *Root) RemoveClass(class string) {
	r.mu.Lock()
	if !r.classes[class] {
		r.mu.Unlock()
		return
	}
	delete(r.classes, class)
	r.mu.Unlock()
	r.notify(Mutation{Kind: MutationClass, Name: class})
}

// ToggleClass flips a class token and reports whether it is now present.
func (r *Root) ToggleClass(class string) bool {
	if r.HasClass(class) {
		r.RemoveClass(class)
		return false
	}
	r.AddClass(class)
	return true
}

// HasClass reports whether the root carries class.
func (r *Root) HasClass(class string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.classes[class]
}

// Classes returns the class tokens in sorted order.
func (r *Root) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedClassesLocked()
}

func (r *Root) sortedClassesLocked() []string {
	classes := make([]string, 0, len(r.classes))
	for class := range r.classes {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// Snapshot returns the computed value of every custom property the scope
// knows about.
func (r *Root) Snapshot() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make(map[string]struct{})
	for name := range r.inline {
		names[name] = struct{}{}
	}
	for _, rule := range r.rules {
		for name := range rule {
			names[name] = struct{}{}
		}
	}

	out := make(map[string]string, len(names))
	for name := range names {
		if value := strings.TrimSpace(r.computedLocked(name)); value != "" {
			out[name] = value
		}
	}
	return out
}

// Observe registers fn to run synchronously after every mutation. The
// returned function removes it.
func (r *Root) Observe(fn func(Mutation)) func() {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.observers[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.observers, id)
		r.mu.Unlock()
	}
}

func (r *Root) notify(m Mutation) {
	r.mu.RLock()
	ids := make([]int, 0, len(r.observers))
	for id := range r.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	observers := make([]func(Mutation), 0, len(ids))
	for _, id := range ids {
		observers = append(observers, r.observers[id])
	}
	r.mu.RUnlock()

	for _, fn := range observers {
		fn(m)
	}
}

// CSS renders the scope as a stylesheet. Inline properties are emitted last
// as !important so they keep their precedence over rules.
func (r *Root) CSS() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder

	selectors := make([]string, 0, len(r.rules))
	for selector := range r.rules {
		selectors = append(selectors, selector)
	}
	sort.Strings(selectors)

	for _, selector := range selectors {
		writeBlock(&b, selector, r.rules[selector], "")
	}
	if len(r.inline) > 0 {
		writeBlock(&b, SelectorRoot, r.inline, " !important")
	}
	return b.String()
}

func writeBlock(b *strings.Builder, selector string, decls map[string]string, suffix string) {
	if len(decls) == 0 {
		return
	}
	names := make([]string, 0, len(decls))
	for name := range decls {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(b, "%s {\n", selector)
	for _, name := range names {
		fmt.Fprintf(b, "  %s: %s%s;\n", name, decls[name], suffix)
	}
	b.WriteString("}\n")
}
