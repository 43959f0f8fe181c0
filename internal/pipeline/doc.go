// Package pipeline implements the three text stages behind htmlfmt.Format.
//
// The stages run strictly in order over an in-memory string:
//   - Void tag normalization (br, hr, img, input, meta, link gain " />")
//   - Style attribute normalization (style="a:b;c:d" becomes "a: b; c: d;")
//   - Indentation (one tag or text run per line, depth from tag shape)
//
// None of the stages parse HTML into a tree. Tags are recognized lexically with
// the patterns documented on each stage, so quoted '>' characters, comments and
// raw-text elements such as <script> are not treated specially. The output for
// malformed markup is deterministic but not corrected.
//
// CheckBalance is the one exception: it runs the golang.org/x/net/html tokenizer
// to report unbalanced tags. It is a separate diagnostic and never feeds back
// into the formatting stages.
package pipeline
