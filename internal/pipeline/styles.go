package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// stylePattern matches double-quoted style attributes.
// Single-quoted values are not matched. The pattern has no leading boundary,
// so attributes such as data-style="..." are rewritten too.
var stylePattern = regexp.MustCompile(`(?i)style="([^"]*)"`)

// DeclarationPolicy decides what happens to a style declaration without ':'.
type DeclarationPolicy int

const (
	// DeclPassThrough keeps the trimmed declaration, rendered as "text;".
	DeclPassThrough DeclarationPolicy = iota
	// DeclDrop removes the declaration from the output.
	DeclDrop
)

// String returns the config spelling of the policy.
func (p DeclarationPolicy) String() string {
	switch p {
	case DeclPassThrough:
		return "keep"
	case DeclDrop:
		return "drop"
	default:
		return fmt.Sprintf("DeclarationPolicy(%d)", int(p))
	}
}

// ParseDeclarationPolicy parses "keep" or "drop" (case-insensitive).
// An empty string yields DeclPassThrough.
func ParseDeclarationPolicy(s string) (DeclarationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return DeclPassThrough, nil
	case "drop":
		return DeclDrop, nil
	default:
		return DeclPassThrough, fmt.Errorf("%w: %q (must be keep or drop)", ErrInvalidDeclarationPolicy, s)
	}
}

// Declaration is one "property: value" pair from a style attribute.
// Bare is set for declarations that had no ':' separator; Property then holds
// the whole trimmed text and Value is empty.
type Declaration struct {
	Property string
	Value    string
	Bare     bool
}

// ParseDeclarations splits CSS text on ';' and then on the first ':'.
// Empty and whitespace-only pieces are dropped. Order is preserved.
func ParseDeclarations(cssText string) []Declaration {
	pieces := strings.Split(cssText, ";")
	decls := make([]Declaration, 0, len(pieces))

	for _, piece := range pieces {
		piece = trimSpace(piece)
		if piece == "" {
			continue
		}
		key, value, ok := strings.Cut(piece, ":")
		if !ok {
			decls = append(decls, Declaration{Property: piece, Bare: true})
			continue
		}
		decls = append(decls, Declaration{
			Property: trimSpace(key),
			Value:    trimSpace(value),
		})
	}

	return decls
}

// RenderDeclarations renders declarations as "key: value;" joined by single spaces.
func RenderDeclarations(decls []Declaration, policy DeclarationPolicy) string {
	rendered := make([]string, 0, len(decls))
	for _, d := range decls {
		if d.Bare {
			if policy == DeclDrop {
				continue
			}
			rendered = append(rendered, d.Property+";")
			continue
		}
		rendered = append(rendered, d.Property+": "+d.Value+";")
	}
	return strings.Join(rendered, " ")
}

// FormatStyleAttributes rewrites every style="..." value into canonical form.
// The attribute name is always emitted in lowercase.
func FormatStyleAttributes(htmlContent string, policy DeclarationPolicy) string {
	if htmlContent == "" {
		return ""
	}

	return replaceSubmatches(stylePattern, htmlContent, func(_ string, groups []string) string {
		return `style="` + RenderDeclarations(ParseDeclarations(groups[1]), policy) + `"`
	})
}
