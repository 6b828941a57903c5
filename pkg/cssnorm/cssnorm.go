// Package cssnorm canonicalizes raw CSS text into a line-oriented form:
// one selector or at-rule header per line (ending in "{"), one declaration
// per line, and every closing brace alone on its line. The inlining engine
// operates on this canonical form and relies on its shape, not on the
// original source formatting.
//
// The tokenizer is tdewolff/parse; unknown constructs pass through
// token-faithfully rather than being rejected.
package cssnorm

import (
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Options controls normalization output.
type Options struct {
	// PreserveStructure keeps comments and unrecognized constructs in the
	// output. When false they are dropped.
	PreserveStructure bool

	// TrailingSemicolons terminates every declaration with a semicolon,
	// including the last declaration of each block.
	TrailingSemicolons bool

	// CompressFontWeight rewrites font-weight keywords to their numeric
	// equivalents (normal -> 400, bold -> 700).
	CompressFontWeight bool
}

// DefaultOptions are the options the inlining pipeline normalizes with.
func DefaultOptions() Options {
	return Options{
		PreserveStructure:  true,
		TrailingSemicolons: true,
		CompressFontWeight: false,
	}
}

// Normalize canonicalizes text. Malformed CSS is never rejected; the
// tokenizer recovers and unparseable runs are passed through.
func Normalize(text string, opts Options) string {
	input := parse.NewInputString(text)
	parser := css.NewParser(input, false)

	w := newWriter(opts)
	var pendingSelectors []string

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil && parser.Err() != io.EOF && opts.PreserveStructure {
				// Unparseable tail: pass the offending tokens through.
				if raw := joinTokens(parser.Values()); raw != "" {
					w.line(raw)
				}
			}
			return w.String()

		case css.CommentGrammar:
			if opts.PreserveStructure {
				w.line(string(data))
			}

		case css.AtRuleGrammar:
			text := string(data)
			if prelude := joinTokens(parser.Values()); prelude != "" {
				text += " " + prelude
			}
			w.line(text + ";")

		case css.BeginAtRuleGrammar:
			header := string(data)
			if prelude := joinTokens(parser.Values()); prelude != "" {
				header += " " + prelude
			}
			w.open(header + "{")

		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			w.close()

		case css.QualifiedRuleGrammar:
			// Grouped selector: every selector before the last arrives as
			// its own qualified rule.
			pendingSelectors = append(pendingSelectors, selectorText(data, parser.Values()))

		case css.BeginRulesetGrammar:
			pendingSelectors = append(pendingSelectors, selectorText(data, parser.Values()))
			w.open(strings.Join(pendingSelectors, ",") + "{")
			pendingSelectors = nil

		case css.DeclarationGrammar:
			prop := string(data)
			value := joinTokens(parser.Values())
			if opts.CompressFontWeight && strings.EqualFold(prop, "font-weight") {
				value = compressFontWeight(value)
			}
			w.declaration(prop + ":" + value)

		case css.CustomPropertyGrammar:
			w.declaration(string(data) + ":" + joinTokens(parser.Values()))

		case css.TokenGrammar:
			if opts.PreserveStructure {
				w.line(string(data))
			}
		}
	}
}

// selectorText joins the selector token stream into its canonical text.
func selectorText(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		if v.TokenType == css.WhitespaceToken {
			sb.WriteByte(' ')
			continue
		}
		sb.Write(v.Data)
	}
	// Grouped selectors may carry their separating comma in the token
	// stream; the caller joins with commas itself.
	return strings.TrimSuffix(strings.TrimSpace(sb.String()), ",")
}

// joinTokens renders value tokens with whitespace runs collapsed to one space.
func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

func compressFontWeight(value string) string {
	switch strings.ToLower(value) {
	case "normal":
		return "400"
	case "bold":
		return "700"
	default:
		return value
	}
}

// writer accumulates canonical lines and tracks the most recent declaration
// per block so the trailing semicolon can be elided when requested.
type writer struct {
	opts  Options
	lines []string

	// Index of the last declaration line in the currently open block,
	// one entry per nesting level. -1 means no declaration yet.
	lastDecl []int
}

func newWriter(opts Options) *writer {
	return &writer{opts: opts}
}

func (w *writer) line(text string) {
	w.lines = append(w.lines, text)
}

func (w *writer) open(header string) {
	w.lines = append(w.lines, header)
	w.lastDecl = append(w.lastDecl, -1)
}

func (w *writer) declaration(text string) {
	w.lines = append(w.lines, text+";")
	if len(w.lastDecl) > 0 {
		w.lastDecl[len(w.lastDecl)-1] = len(w.lines) - 1
	}
}

func (w *writer) close() {
	if len(w.lastDecl) > 0 {
		last := w.lastDecl[len(w.lastDecl)-1]
		w.lastDecl = w.lastDecl[:len(w.lastDecl)-1]
		if !w.opts.TrailingSemicolons && last >= 0 {
			w.lines[last] = strings.TrimSuffix(w.lines[last], ";")
		}
	}
	w.lines = append(w.lines, "}")
}

func (w *writer) String() string {
	if len(w.lines) == 0 {
		return ""
	}
	return strings.Join(w.lines, "\n") + "\n"
}
