package render

import (
	"regexp"
	"strings"
)

var placeholder = regexp.MustCompile(`\$(?:\$|[_a-zA-Z][_a-zA-Z0-9]*|\{[_a-zA-Z][_a-zA-Z0-9]*\})`)

// Substitute replaces $Name and ${Name} placeholders in template with values
// from mapping. Unknown names and malformed placeholders are kept verbatim,
// and $$ yields a single dollar sign.
func Substitute(template string, mapping map[string]string) string {
	if !strings.Contains(template, "$") {
		return template
	}
	return placeholder.ReplaceAllStringFunc(template, func(m string) string {
		if m == "$$" {
			return "$"
		}
		name := strings.TrimSuffix(strings.TrimPrefix(m[1:], "{"), "}")
		if v, ok := mapping[name]; ok {
			return v
		}
		return m
	})
}
