/*
File    : lox/loxvalue/display.go
*/
package loxvalue

import (
	"strconv"
	"strings"
)

// Stringify renders any runtime value in its canonical textual form, per
// spec.md §6: numbers use the shortest round-trip decimal with a
// trailing ".0" trimmed so integral floats print without a decimal
// point; strings print unquoted; Callable values print via their own
// String(); nil prints "nil".
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		text := strconv.FormatFloat(v, 'f', -1, 64)
		if strings.HasSuffix(text, ".0") {
			text = strings.TrimSuffix(text, ".0")
		}
		return text
	case string:
		return v
	case Callable:
		return v.String()
	case *Instance:
		return v.String()
	case *Class:
		return v.String()
	default:
		return "nil"
	}
}
