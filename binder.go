package checkkit

import (
	"slices"

	"github.com/dmitrymomot/checkkit/pkg/tabular"
)

// BindConfig controls one binding pass. The zero value matches the engine
// defaults: underscore convention, shared inference off.
type BindConfig struct {
	// Splitter provides the naming convention for shared inference.
	// Nil selects UnderscoreSplitter.
	Splitter NameSplitter

	// InferShared enables the naming-convention fallback when neither an
	// alias nor an exact column match resolves a parameter.
	InferShared bool
}

func (c BindConfig) splitter() NameSplitter {
	if c.Splitter == nil {
		return UnderscoreSplitter{}
	}
	return c.Splitter
}

type bindingEntry struct {
	param   Param
	columns []string

	// shared marks a multi-column group after demotion.
	shared bool

	// prefixes runs parallel to columns for convention-derived groups and
	// is nil for alias-derived or static entries.
	prefixes []string
}

// Binding is the resolved parameter-to-column mapping of one rule against
// one dataset. Shared groups are aligned: for every shared parameter,
// column i belongs to concrete argument set i.
type Binding struct {
	rule     string
	entries  []bindingEntry
	sets     int
	prefixes []string
}

// Rule returns the bound rule's name.
func (b Binding) Rule() string { return b.rule }

// Expansions returns the number of concrete argument sets this binding
// produces: the shared-group cardinality, or 1 when nothing is shared.
func (b Binding) Expansions() int { return b.sets }

// Columns returns the literal dataset columns bound to a parameter and
// whether the parameter is part of the binding.
func (b Binding) Columns(param string) ([]string, bool) {
	for _, e := range b.entries {
		if e.param.Name == param {
			return slices.Clone(e.columns), true
		}
	}
	return nil, false
}

// IsShared reports whether the parameter bound to a multi-column group.
func (b Binding) IsShared(param string) bool {
	for _, e := range b.entries {
		if e.param.Name == param {
			return e.shared
		}
	}
	return false
}

// Map returns a parameter-to-columns snapshot, convenient for comparing
// bindings in tests and logs.
func (b Binding) Map() map[string][]string {
	out := make(map[string][]string, len(b.entries))
	for _, e := range b.entries {
		out[e.param.Name] = slices.Clone(e.columns)
	}
	return out
}

// setPrefix returns the entity prefix of concrete set i, or "" when the
// expansion was not convention-derived.
func (b Binding) setPrefix(i int) string {
	if i < len(b.prefixes) {
		return b.prefixes[i]
	}
	return ""
}

// columnFor returns the literal column feeding a parameter in concrete
// set i: shared entries advance with the set, static entries repeat.
func (e bindingEntry) columnFor(i int) string {
	if e.shared {
		return e.columns[i]
	}
	return e.columns[0]
}

// Bind resolves every data parameter of a rule against the dataset's
// columns. Per parameter, in documented precedence order:
//
//  1. an alias entry, filtered to the columns actually present (one match
//     binds statically, several form a shared group, none falls through);
//  2. an exact column name match;
//  3. when cfg.InferShared is set, the naming convention: every column
//     whose base equals the parameter's base joins the group, in dataset
//     column order.
//
// Shared groups with a single member are demoted to static. The remaining
// shared groups must align one-to-one: equal cardinality and, for
// convention-derived groups, identical prefix sets. Convention-derived
// groups are reordered so that concrete set i holds one column per
// parameter with the same prefix. Binding the same rule against the same
// dataset and aliases is deterministic.
func Bind(rule *Rule, ds *tabular.Dataset, aliases AliasMap, cfg BindConfig) (Binding, error) {
	split := cfg.splitter()
	b := Binding{rule: rule.Name(), sets: 1}

	for _, p := range rule.params {
		entry, err := resolveParam(rule.name, p, ds, aliases, split, cfg.InferShared)
		if err != nil {
			return Binding{}, err
		}
		b.entries = append(b.entries, entry)
	}

	// Single-member groups collapse to the static case so they do not
	// force a spurious expansion.
	for i := range b.entries {
		if b.entries[i].shared && len(b.entries[i].columns) == 1 {
			b.entries[i].shared = false
			b.entries[i].prefixes = nil
		}
	}

	if err := alignShared(&b, split); err != nil {
		return Binding{}, err
	}
	return b, nil
}

func resolveParam(rule string, p Param, ds *tabular.Dataset, aliases AliasMap, split NameSplitter, inferShared bool) (bindingEntry, error) {
	entry := bindingEntry{param: p}

	if aliased, ok := aliases[p.Name]; ok {
		var present []string
		for _, col := range aliased {
			if ds.Has(col) {
				present = append(present, col)
			}
		}
		switch {
		case len(present) == 1:
			entry.columns = present
			return entry, nil
		case len(present) > 1:
			entry.columns = present
			entry.shared = true
			return entry, nil
		}
		// No aliased column exists in this dataset; an alias is advisory,
		// so resolution continues with direct matching.
	}

	if ds.Has(p.Name) {
		entry.columns = []string{p.Name}
		return entry, nil
	}

	if inferShared {
		if _, base, ok := split.Split(p.Name); ok {
			for _, col := range ds.ColumnNames() {
				cPrefix, cBase, ok := split.Split(col)
				if ok && cBase == base {
					entry.columns = append(entry.columns, col)
					entry.prefixes = append(entry.prefixes, cPrefix)
				}
			}
			if len(entry.columns) > 0 {
				entry.shared = true
				return entry, nil
			}
		}
	}

	return bindingEntry{}, &MissingColumnError{Rule: rule, Param: p.Name, InferShared: inferShared}
}

// alignShared verifies that all shared groups of the binding agree on
// cardinality and prefixes, reorders convention-derived groups onto a
// canonical prefix order, and fixes the expansion count.
func alignShared(b *Binding, split NameSplitter) error {
	var shared []*bindingEntry
	for i := range b.entries {
		if b.entries[i].shared {
			shared = append(shared, &b.entries[i])
		}
	}
	if len(shared) == 0 {
		b.sets = 1
		return nil
	}

	// The canonical group dictates the set order: the first
	// convention-derived group if any, else the first shared group.
	canon := shared[0]
	for _, e := range shared {
		if e.prefixes != nil {
			canon = e
			break
		}
	}

	for _, e := range shared {
		if e == canon {
			continue
		}
		if len(e.columns) != len(canon.columns) {
			if len(e.columns) < len(canon.columns) {
				return alignmentError(b.rule, e, canon, split)
			}
			return alignmentError(b.rule, canon, e, split)
		}
		if e.prefixes == nil || canon.prefixes == nil {
			continue // positional pairing for alias-derived groups
		}
		byPrefix := make(map[string]string, len(e.columns))
		for i, prefix := range e.prefixes {
			byPrefix[prefix] = e.columns[i]
		}
		cols := make([]string, len(canon.prefixes))
		for i, prefix := range canon.prefixes {
			col, ok := byPrefix[prefix]
			if !ok {
				return alignmentError(b.rule, e, canon, split)
			}
			cols[i] = col
		}
		e.columns = cols
		e.prefixes = slices.Clone(canon.prefixes)
	}

	b.sets = len(canon.columns)
	b.prefixes = slices.Clone(canon.prefixes)
	return nil
}

// alignmentError names the counterpart columns the short group lacks. When
// both groups are convention-derived the missing names are reconstructed
// from the long group's surplus prefixes; otherwise the long group's
// surplus columns are reported as-is.
func alignmentError(rule string, short, long *bindingEntry, split NameSplitter) *AlignmentError {
	var missing []string
	if short.prefixes != nil && long.prefixes != nil {
		have := make(map[string]struct{}, len(short.prefixes))
		for _, prefix := range short.prefixes {
			have[prefix] = struct{}{}
		}
		_, base, _ := split.Split(short.param.Name)
		for _, prefix := range long.prefixes {
			if _, ok := have[prefix]; !ok {
				missing = append(missing, split.Join(prefix, base))
			}
		}
	} else if len(long.columns) > len(short.columns) {
		missing = slices.Clone(long.columns[len(short.columns):])
	}
	return &AlignmentError{
		Rule:    rule,
		Param:   short.param.Name,
		Want:    len(long.columns),
		Got:     len(short.columns),
		Missing: missing,
	}
}
