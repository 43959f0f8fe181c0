package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultIndentWidth is the number of spaces per nesting level.
const DefaultIndentWidth = 4

// MaxIndentWidth bounds the configurable indent width.
const MaxIndentWidth = 16

// tagPattern matches a tag token: '<', at least one non-'>' character, '>'.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// TokenKind classifies a token by its lexical shape.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenOpen
	TokenClose
	TokenSelfClosing
)

func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	case TokenSelfClosing:
		return "self-closing"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is a tag or a text run, as found in the input (not trimmed).
type Token struct {
	Kind TokenKind
	Raw  string
}

// classify derives the kind from the raw token text.
// "<img" is treated as void even when not self-closed, so the indenter stays
// correct when run without CloseVoidTags.
func classify(raw string) TokenKind {
	switch {
	case strings.HasPrefix(raw, "</"):
		return TokenClose
	case !strings.HasPrefix(raw, "<"):
		return TokenText
	case strings.HasSuffix(raw, selfClosingMarker), strings.HasPrefix(raw, "<img"):
		return TokenSelfClosing
	default:
		return TokenOpen
	}
}

// Tokenize splits markup at every tag boundary.
// Tokens that are empty or whitespace-only are discarded.
func Tokenize(htmlContent string) []Token {
	locs := tagPattern.FindAllStringIndex(htmlContent, -1)
	tokens := make([]Token, 0, 2*len(locs)+1)

	appendToken := func(raw string) {
		if trimSpace(raw) == "" {
			return
		}
		tokens = append(tokens, Token{Kind: classify(raw), Raw: raw})
	}

	last := 0
	for _, loc := range locs {
		appendToken(htmlContent[last:loc[0]])
		appendToken(htmlContent[loc[0]:loc[1]])
		last = loc[1]
	}
	appendToken(htmlContent[last:])

	return tokens
}

// indentState is the accumulator threaded through the token walk.
type indentState struct {
	level int
	out   strings.Builder
}

// step emits one token line and returns the updated state.
func (s *indentState) step(tok Token, pad string) {
	if tok.Kind == TokenClose {
		s.level = max(s.level-1, 0)
	}

	s.out.WriteString(strings.Repeat(pad, s.level))
	s.out.WriteString(trimSpace(tok.Raw))
	s.out.WriteByte('\n')

	if tok.Kind == TokenOpen {
		s.level++
	}
}

// Indent puts every token on its own line, prefixed by level*width spaces.
// Closing tags decrease the level before they are written, opening tags increase
// it after. The level never drops below zero. The result has no leading or
// trailing whitespace.
func Indent(htmlContent string, width int) string {
	tokens := Tokenize(htmlContent)
	if len(tokens) == 0 {
		return ""
	}

	pad := strings.Repeat(" ", max(width, 0))
	var state indentState
	state.out.Grow(len(htmlContent) + len(tokens)*(width+1))

	for _, tok := range tokens {
		state.step(tok, pad)
	}

	return trimSpace(state.out.String())
}

// ValidateIndentWidth reports whether width is within 0..MaxIndentWidth.
func ValidateIndentWidth(width int) error {
	if width < 0 || width > MaxIndentWidth {
		return fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidIndentWidth, width, MaxIndentWidth)
	}
	return nil
}
