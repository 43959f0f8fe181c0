package pipeline

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// IssueKind classifies a balance problem.
type IssueKind int

const (
	// IssueUnclosed is an opening tag never closed before its parent closed or input ended.
	IssueUnclosed IssueKind = iota
	// IssueUnexpectedClose is a closing tag with no matching opening tag.
	IssueUnexpectedClose
)

func (k IssueKind) String() string {
	switch k {
	case IssueUnclosed:
		return "unclosed"
	case IssueUnexpectedClose:
		return "unexpected close"
	default:
		return fmt.Sprintf("IssueKind(%d)", int(k))
	}
}

// Issue is one tag balance problem found by CheckBalance.
type Issue struct {
	Kind IssueKind
	Tag  string // lowercase tag name
	Line int    // 1-based line of the offending tag
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueUnclosed:
		return fmt.Sprintf("line %d: <%s> is never closed", i.Line, i.Tag)
	case IssueUnexpectedClose:
		return fmt.Sprintf("line %d: </%s> has no matching opening tag", i.Line, i.Tag)
	default:
		return fmt.Sprintf("line %d: %s <%s>", i.Line, i.Kind, i.Tag)
	}
}

// voidAtoms lists elements that never take a closing tag.
var voidAtoms = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

type openTag struct {
	name string
	line int
}

// CheckBalance reports opening tags that are never closed and closing tags with no
// opener. Void elements are ignored whether or not they are self-closed.
// Unlike the formatting stages, it uses a real HTML tokenizer, so quoted '>'
// characters, comments and raw-text elements are handled correctly.
func CheckBalance(htmlContent string) ([]Issue, error) {
	z := html.NewTokenizer(strings.NewReader(htmlContent))

	var (
		issues []Issue
		stack  []openTag
		line   = 1
	)

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("tokenizing HTML: %w", err)
			}
			break
		}

		tokLine := line
		line += strings.Count(string(z.Raw()), "\n")

		switch tt {
		case html.StartTagToken:
			tok := z.Token()
			if voidAtoms[tok.DataAtom] {
				continue
			}
			stack = append(stack, openTag{name: tok.Data, line: tokLine})

		case html.EndTagToken:
			tok := z.Token()
			if voidAtoms[tok.DataAtom] {
				continue
			}
			idx := lastIndexOf(stack, tok.Data)
			if idx < 0 {
				issues = append(issues, Issue{Kind: IssueUnexpectedClose, Tag: tok.Data, Line: tokLine})
				continue
			}
			for _, open := range stack[idx+1:] {
				issues = append(issues, Issue{Kind: IssueUnclosed, Tag: open.name, Line: open.line})
			}
			stack = stack[:idx]
		}
	}

	for _, open := range stack {
		issues = append(issues, Issue{Kind: IssueUnclosed, Tag: open.name, Line: open.line})
	}

	slices.SortStableFunc(issues, func(a, b Issue) int { return a.Line - b.Line })
	return issues, nil
}

func lastIndexOf(stack []openTag, name string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].name == name {
			return i
		}
	}
	return -1
}
