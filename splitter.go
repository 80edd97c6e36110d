package checkkit

import "strings"

// NameSplitter breaks a parameter or column name into an entity prefix and
// an attribute base for shared-parameter inference. Implementations report
// ok=false for names that do not follow their convention; such names are
// ineligible for inference and fall through to the error path. Join is the
// inverse of Split and lets diagnostics name the column a misaligned group
// is missing.
type NameSplitter interface {
	Split(name string) (prefix, base string, ok bool)
	Join(prefix, base string) string
}

// UnderscoreSplitter splits at the first underscore, so "tsm_gross_income"
// becomes prefix "tsm" and base "gross_income". Names without an
// underscore, or with an empty prefix or base, are not eligible.
type UnderscoreSplitter struct{}

func (UnderscoreSplitter) Split(name string) (string, string, bool) {
	i := strings.Index(name, "_")
	if i <= 0 || i == len(name)-1 {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}

func (UnderscoreSplitter) Join(prefix, base string) string {
	return prefix + "_" + base
}
