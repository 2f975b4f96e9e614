package utils

import (
	"regexp"
	"time"

	"github.com/itchyny/timefmt-go"
)

// variablePattern matches ${var} patterns.
var variablePattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Template is a report path that supports ${id}, ${profile} variables and
// strftime tokens like %Y, %m, %d.
type Template string

// Expand formats strftime tokens using t0, then replaces variables.
// Variable values are inserted literally.
func (t Template) Expand(t0 time.Time, vars map[string]string) string {
	return t.ExpandWithTime(t0).ExpandVariables(vars).String()
}

// ExpandWithTime formats strftime tokens with the given time.
func (t Template) ExpandWithTime(t0 time.Time) Template {
	return Template(timefmt.Format(t0, string(t)))
}

// ExpandVariables replaces known ${name} variables and leaves unknown ones.
func (t Template) ExpandVariables(vars map[string]string) Template {
	result := variablePattern.ReplaceAllStringFunc(string(t), func(match string) string {
		varName := match[2 : len(match)-1]
		if val, ok := vars[varName]; ok {
			return val
		}
		return match
	})
	return Template(result)
}

func (t Template) String() string {
	return string(t)
}
