// Package params expands parameter templates. A template references
// variables as $name tokens, where name is a maximal run of alphanumeric
// or underscore characters. Expansion uses an explicit scanner rather than
// regex so literal '$' and identifier boundaries behave predictably.
package params

import "strings"

// References returns the unique variable names referenced by the template,
// in first-appearance order.
func References(template string) []string {
	var names []string
	seen := make(map[string]bool)

	for i := 0; i < len(template); i++ {
		if template[i] != '$' {
			continue
		}
		name, width := scanIdent(template[i+1:])
		if width == 0 {
			continue
		}
		i += width
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}

// Expand substitutes $name tokens with values from the map. A referenced
// name missing from the map substitutes the empty string; a '$' not
// followed by an identifier character passes through unchanged.
func Expand(template string, values map[string]string) string {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' {
			b.WriteByte(c)
			continue
		}
		name, width := scanIdent(template[i+1:])
		if width == 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteString(values[name])
		i += width
	}

	return b.String()
}

// scanIdent чете [A-Za-z0-9_]+ от началото на s
func scanIdent(s string) (string, int) {
	i := 0
	for i < len(s) && isIdentChar(s[i]) {
		i++
	}
	return s[:i], i
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9'
}
