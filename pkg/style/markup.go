package style

import (
	"regexp"
)

var anyTag = regexp.MustCompile(`</?[A-Z][A-Za-z]*>`)

// Expand replaces <Name>text</Name> with text rendered in the named style.
// Unknown tags are removed. Tags do not nest.
func (r Registry) Expand(text string) string {
	for name, style := range r {
		pattern := regexp.MustCompile(`(?s)<` + name + `>(.*?)</` + name + `>`)
		text = pattern.ReplaceAllStringFunc(text, func(match string) string {
			return style.Render(pattern.FindStringSubmatch(match)[1])
		})
	}
	return Strip(text)
}

// Strip removes every style tag, leaving the plain text.
func Strip(text string) string {
	return anyTag.ReplaceAllString(text, "")
}
