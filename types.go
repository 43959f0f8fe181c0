package htmlfmt

import (
	"fmt"
	"strings"

	"github.com/alnah/go-htmlfmt/internal/pipeline"
)

// Indentation bounds, in spaces per nesting level.
const (
	DefaultIndentWidth = pipeline.DefaultIndentWidth
	MaxIndentWidth     = pipeline.MaxIndentWidth
)

// MaxInputSize bounds Formatter.Format input (8 MiB).
const MaxInputSize = 8 << 20

// DeclarationPolicy decides what happens to a style declaration without ':'.
type DeclarationPolicy = pipeline.DeclarationPolicy

// Declaration policies.
const (
	// KeepBareDeclarations renders "bogus" as "bogus;".
	KeepBareDeclarations = pipeline.DeclPassThrough
	// DropBareDeclarations removes "bogus" from the attribute.
	DropBareDeclarations = pipeline.DeclDrop
)

// ParseDeclarationPolicy parses "keep" or "drop". Empty means keep.
func ParseDeclarationPolicy(s string) (DeclarationPolicy, error) {
	return pipeline.ParseDeclarationPolicy(s)
}

// Stage selects pipeline stages. Stages always run in the fixed order
// void tags, styles, indent, regardless of how the mask is built.
type Stage uint8

const (
	StageVoidTags Stage = 1 << iota
	StageStyles
	StageIndent

	// AllStages is the default.
	AllStages = StageVoidTags | StageStyles | StageIndent
)

var stageNames = []struct {
	stage Stage
	name  string
}{
	{StageVoidTags, "void-tags"},
	{StageStyles, "styles"},
	{StageIndent, "indent"},
}

// String lists enabled stage names joined by ','.
func (s Stage) String() string {
	var names []string
	for _, sn := range stageNames {
		if s&sn.stage != 0 {
			names = append(names, sn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// ParseStages parses a comma-separated list such as "void-tags,indent".
// "all" selects every stage. Names are case-insensitive.
func ParseStages(s string) (Stage, error) {
	var mask Stage
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if part == "all" {
			mask |= AllStages
			continue
		}
		found := false
		for _, sn := range stageNames {
			if sn.name == part {
				mask |= sn.stage
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown stage %q (valid: void-tags, styles, indent, all)", part)
		}
	}
	if mask == 0 {
		return 0, ErrNoStages
	}
	return mask, nil
}

// Input is a single formatting request.
type Input struct {
	HTML string
	Name string // optional, used in error messages
}

// Result is the outcome of Formatter.Format.
type Result struct {
	HTML    string
	Changed bool // output differs from input
}

// Issue is a tag balance problem reported by CheckBalance.
type Issue = pipeline.Issue

// Issue kinds.
const (
	IssueUnclosed        = pipeline.IssueUnclosed
	IssueUnexpectedClose = pipeline.IssueUnexpectedClose
)
