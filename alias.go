package checkkit

import "slices"

// AliasMap maps a logical parameter name to the literal column names it may
// bind to. A single-entry value pins the parameter to one column; multiple
// entries form a shared group when more than one of them is present in the
// dataset.
type AliasMap map[string][]string

// Clone returns a deep copy, so callers can hold an AliasMap without
// sharing mutable state with the rule set that produced it.
func (m AliasMap) Clone() AliasMap {
	if m == nil {
		return nil
	}
	out := make(AliasMap, len(m))
	for param, cols := range m {
		out[param] = slices.Clone(cols)
	}
	return out
}

// MergeAliases flattens alias layers ordered from most-base to most-derived
// into a single map. A key already present keeps its earlier value: derived
// layers add aliases, they never replace a base convention. Nil layers are
// skipped.
func MergeAliases(layers ...AliasMap) AliasMap {
	merged := make(AliasMap)
	for _, layer := range layers {
		for param, cols := range layer {
			if _, ok := merged[param]; ok {
				continue
			}
			merged[param] = slices.Clone(cols)
		}
	}
	return merged
}
