package shell

import (
	"os"
	"regexp"
	"strings"
)

// ${NAME} or ${NAME:default}
var reVar = regexp.MustCompile(`\${([^}{:]+)(?::([^}{]*))?}`)

// Expand - replace variables with values from lookup. Unknown variable without
// default stays as is, so the text can be expanded again later.
func Expand(text string, lookup func(name string) (string, bool)) string {
	matches := reVar.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}

	var sb strings.Builder
	var last int

	for _, m := range matches {
		sb.WriteString(text[last:m[0]])
		last = m[1]

		if value, ok := lookup(text[m[2]:m[3]]); ok {
			sb.WriteString(value)
		} else if m[4] >= 0 {
			sb.WriteString(text[m[4]:m[5]])
		} else {
			sb.WriteString(text[m[0]:m[1]])
		}
	}

	sb.WriteString(text[last:])
	return sb.String()
}

func ExpandEnv(text string) string {
	return Expand(text, os.LookupEnv)
}
