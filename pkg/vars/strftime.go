package vars

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDatetimeFormat is used when a datetime variable has no format.
const DefaultDatetimeFormat = "%Y-%m-%d"

// strftime directives supported by datetime variables, mapped to Go
// reference-time layouts. A closed set: anything else is an error.
var directives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'e': "_2",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'B': "January",
	'j': "002",
}

// formatDatetime formats the instant using an strftime-style format string.
// Each directive is formatted on its own and literal text is written
// through untouched, so literals that look like Go reference-time tokens
// ("Jan", "15", a bare digit) stay verbatim. An unrecognized directive
// surfaces as an error rather than being silently dropped from the output.
func formatDatetime(name, format string, now time.Time) (string, error) {
	if format == "" {
		format = DefaultDatetimeFormat
	}

	var b strings.Builder

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(format) {
			return "", &ResolutionError{Var: name, Err: fmt.Errorf("%w: trailing %%", ErrInvalidFormat)}
		}
		i++
		d := format[i]
		if d == '%' {
			b.WriteByte('%')
			continue
		}
		layout, ok := directives[d]
		if !ok {
			return "", &ResolutionError{Var: name, Err: fmt.Errorf("%w: unrecognized directive %%%c", ErrInvalidFormat, d)}
		}
		b.WriteString(now.Format(layout))
	}

	return b.String(), nil
}
