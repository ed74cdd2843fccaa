package i18n

import (
	"fmt"
	"maps"
	"strings"
)

// M is a set of named values substituted into {{name}} placeholders.
type M map[string]any

// ReplacePlaceholders replaces {{name}} placeholders in template with values
// from placeholders. Unknown placeholders are left untouched.
//
//	ReplacePlaceholders("Hello, {{name}}!", M{"name": "Jana"}) // "Hello, Jana!"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "{{"+key+"}}", fmt.Sprint(value))
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

func mergePlaceholders(placeholders ...M) M {
	switch len(placeholders) {
	case 0:
		return nil
	case 1:
		return placeholders[0]
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return merged
}
