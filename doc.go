// Package htmlfmt reformats raw HTML snippets into a normalized, readable form.
//
// # Quick Start
//
// Format a snippet with the default settings:
//
//	out := htmlfmt.Format(`<div><p style="color:red;margin:2px">hi</p><br></div>`)
//	fmt.Println(out)
//
// Output:
//
//	<div>
//	    <p style="color: red; margin: 2px;">
//	        hi
//	    </p>
//	    <br />
//	</div>
//
// Format is total: every string input produces a string output, the empty string
// formats to the empty string, and malformed markup yields deterministic output
// rather than an error.
//
// # Formatting Pipeline
//
// The transformation runs three stages in order:
//
//  1. Void tags (br, hr, img, input, meta, link) gain an explicit " />"
//  2. style="..." values are rewritten as "key: value;" joined by single spaces
//  3. Every tag and text run is put on its own line, indented by nesting depth
//
// Indentation depth comes from the lexical shape of each tag (opening, closing,
// self-closing), not from a parsed tree. See the internal pipeline package for the
// exact matching rules and their known limitations.
//
// # Configuration
//
// Use functional options to customize a Formatter:
//
//	f, err := htmlfmt.NewFormatter(
//	    htmlfmt.WithIndentWidth(2),
//	    htmlfmt.WithDeclarationPolicy(htmlfmt.DropBareDeclarations),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := f.Format(ctx, htmlfmt.Input{HTML: snippet})
//
// Formatter.Format additionally honors context cancellation, enforces MaxInputSize
// and reports whether the output differs from the input.
//
// # Tag Balance
//
// CheckBalance is an opt-in diagnostic that tokenizes the input with a real HTML
// tokenizer and reports unclosed or unmatched tags. It never changes formatting.
//
// # Concurrency
//
// Format, Formatter and CheckBalance hold no mutable shared state and are safe for
// concurrent use.
package htmlfmt
