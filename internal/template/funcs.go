// Package template wraps text/template with the helpers available to matrix templates.
package template

import (
	"strings"
	"text/template"
)

// FuncMap returns the function map available to matrix templates.
// Nothing in it depends on the clock or the environment, so output stays
// reproducible.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"join":       join,
		"replace":    replace,
		"trimPrefix": trimPrefix,
		"trimSuffix": trimSuffix,
		"default":    defaultVal,
	}
}

// join concatenates elems with sep.
// Argument order is (sep, elems) to support piping: {{ .Distros | join ", " }}.
func join(sep string, elems []string) string {
	return strings.Join(elems, sep)
}

// replace replaces all occurrences of old with repl in s.
// Argument order is (old, repl, s) to support piping: {{ "linux_musl" | replace "_" "-" }}.
func replace(old, repl, s string) string {
	return strings.ReplaceAll(s, old, repl)
}

// trimPrefix removes the given prefix from s.
func trimPrefix(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// trimSuffix removes the given suffix from s.
func trimSuffix(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

// defaultVal returns val if it's non-empty, otherwise returns def.
func defaultVal(def, val string) string {
	if val != "" {
		return val
	}

	return def
}
