package pipeline

import (
	"regexp"
	"strings"
)

// voidTags lists the element names rewritten by CloseVoidTags.
var voidTags = []string{"br", "hr", "img", "input", "meta", "link"}

// voidTagPattern matches void element tags, capturing the name as written and the
// raw attribute text up to the first '>'.
// There is no word boundary after the name, so "<brx>" matches as "br" + "x".
var voidTagPattern = regexp.MustCompile(`(?i)<(` + strings.Join(voidTags, "|") + `)([^>]*)>`)

// selfClosingMarker ends an explicitly self-closed tag.
const selfClosingMarker = "/>"

// CloseVoidTags rewrites every void element tag to end with " />".
// Tags already ending in "/>" are left untouched. Attribute text is trimmed and
// separated from the tag name by a single space. The tag name keeps its casing.
func CloseVoidTags(htmlContent string) string {
	if htmlContent == "" {
		return ""
	}

	return replaceSubmatches(voidTagPattern, htmlContent, func(match string, groups []string) string {
		if strings.HasSuffix(match, selfClosingMarker) {
			return match
		}

		tagName, attrs := groups[1], trimSpace(groups[2])
		if attrs == "" {
			return "<" + tagName + " " + selfClosingMarker
		}
		return "<" + tagName + " " + attrs + " " + selfClosingMarker
	})
}

// replaceSubmatches is ReplaceAllStringFunc with access to capture groups.
func replaceSubmatches(re *regexp.Regexp, s string, repl func(match string, groups []string) string) string {
	locs := re.FindAllStringSubmatchIndex(s, -1)
	if len(locs) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(locs)*2)

	last := 0
	for _, loc := range locs {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(repl(groups[0], groups))
		last = loc[1]
	}
	b.WriteString(s[last:])

	return b.String()
}
