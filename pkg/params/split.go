package params

import "strings"

// SplitArgs splits an expanded parameter string into process arguments
// using shell-like rules: whitespace separates arguments, single or double
// quotes group substrings containing spaces, and the quotes themselves are
// not part of the argument. No escape sequences are interpreted.
func SplitArgs(s string) []string {
	var args []string
	var current strings.Builder
	var quote byte
	inArg := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				current.WriteByte(c)
			}
		case c == '\'' || c == '"':
			quote = c
			inArg = true
		case c == ' ' || c == '\t' || c == '\n':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteByte(c)
			inArg = true
		}
	}

	if inArg {
		args = append(args, current.String())
	}

	return args
}
