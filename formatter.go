package htmlfmt

import (
	"context"
	"fmt"

	"github.com/alnah/go-htmlfmt/internal/pipeline"
)

// Formatter runs the formatting pipeline with a fixed configuration.
// A Formatter is immutable after construction and safe for concurrent use.
type Formatter struct {
	indentWidth int
	policy      DeclarationPolicy
	stages      Stage
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithIndentWidth sets the number of spaces per nesting level (0-16).
func WithIndentWidth(width int) Option {
	return func(f *Formatter) {
		f.indentWidth = width
	}
}

// WithDeclarationPolicy sets how style declarations without ':' are handled.
func WithDeclarationPolicy(p DeclarationPolicy) Option {
	return func(f *Formatter) {
		f.policy = p
	}
}

// WithStages restricts which stages run.
func WithStages(s Stage) Option {
	return func(f *Formatter) {
		f.stages = s
	}
}

// NewFormatter creates a Formatter. Without options it behaves exactly like Format.
// Returns error if an option value is out of range.
func NewFormatter(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		indentWidth: DefaultIndentWidth,
		policy:      KeepBareDeclarations,
		stages:      AllStages,
	}

	for _, opt := range opts {
		opt(f)
	}

	if err := pipeline.ValidateIndentWidth(f.indentWidth); err != nil {
		return nil, err
	}
	if f.policy != KeepBareDeclarations && f.policy != DropBareDeclarations {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDeclarationPolicy, int(f.policy))
	}
	if f.stages&AllStages == 0 {
		return nil, ErrNoStages
	}

	return f, nil
}

// defaultFormatter backs the package-level Format.
var defaultFormatter = &Formatter{
	indentWidth: DefaultIndentWidth,
	policy:      KeepBareDeclarations,
	stages:      AllStages,
}

// Format applies void tag normalization, style normalization and indentation
// with default settings. It never fails; the empty string formats to itself.
func Format(input string) string {
	return defaultFormatter.apply(input)
}

// Format formats in.HTML. It returns ctx.Err() if the context is already done
// and ErrInputTooLarge above MaxInputSize. The transformation itself cannot fail.
func (f *Formatter) Format(ctx context.Context, in Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(in.HTML) > MaxInputSize {
		return nil, fmt.Errorf("%w: %s (%d bytes, max %d)", ErrInputTooLarge, displayName(in.Name), len(in.HTML), MaxInputSize)
	}

	out := f.apply(in.HTML)
	return &Result{HTML: out, Changed: out != in.HTML}, nil
}

// String formats s and returns the output, ignoring size limits.
func (f *Formatter) String(s string) string {
	return f.apply(s)
}

// apply threads the input through each enabled stage.
func (f *Formatter) apply(html string) string {
	if html == "" {
		return ""
	}
	if f.stages&StageVoidTags != 0 {
		html = pipeline.CloseVoidTags(html)
	}
	if f.stages&StageStyles != 0 {
		html = pipeline.FormatStyleAttributes(html, f.policy)
	}
	if f.stages&StageIndent != 0 {
		html = pipeline.Indent(html, f.indentWidth)
	}
	return html
}

// CheckBalance reports unclosed and unmatched tags using a real HTML tokenizer.
// It is independent of formatting and does not change any output.
func CheckBalance(html string) ([]Issue, error) {
	return pipeline.CheckBalance(html)
}

func displayName(name string) string {
	if name == "" {
		return "<input>"
	}
	return name
}
