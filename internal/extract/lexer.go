package extract

import (
	"fmt"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// This file backs the string/template/comment/brace-body primitives
// scan.go's callers need with github.com/tdewolff/parse/v2/js, the sibling
// of the css subpackage cssfrag.go already walks by hand. Classify's own
// top-level driving loop (classifier.go) keeps its hand-rolled depth
// counter: it interleaves byte-offset bookkeeping with EditLog mutations
// and a "nearest enclosing top-level statement" hoist point that a bare
// token stream doesn't expose, so nothing here changes that loop's
// structure. What the loop delegates here is the part a hand-rolled
// scanner gets wrong easiest — knowing exactly where a string, a
// `${ }`-interpolated template, or a comment ends, including nested
// templates and nested object/template expressions inside a substitution —
// which is precisely the ambiguity `js.Lexer` tracks an internal bracket
// stack to resolve correctly.
//
// Each helper below lexes a fresh `js.Lexer` positioned at the byte offset
// it's asked to classify; none needs to carry lexer state across calls,
// since every call site already knows it's sitting on the start of a
// string, template, comment, or brace.

// scanQuotedString returns the end offset (exclusive) of a '...' or "..."
// string literal starting at i.
func scanQuotedString(src string, i int) (int, error) {
	lexer := js.NewLexer(parse.NewInputString(src[i:]))
	tt, text := lexer.Next()
	if tt != js.StringToken {
		return 0, fmt.Errorf("unterminated string literal at byte %d", i)
	}
	return i + len(text), nil
}

// scanTemplateLiteral returns the end offset (exclusive) of the backtick
// template literal starting at i (src[i] == '`'), and whether it contains
// at least one `${ }` substitution. Nested templates, strings, and
// comments inside substitutions are tracked by js.Lexer's own bracket
// stack, so a `${ {a: `x`} }` substitution resolves its closing `}`
// against the right nesting level without this function recursing itself.
func scanTemplateLiteral(src string, i int) (end int, dynamic bool, err error) {
	lexer := js.NewLexer(parse.NewInputString(src[i:]))
	tt, text := lexer.Next()
	switch tt {
	case js.TemplateToken:
		return i + len(text), false, nil
	case js.TemplateStartToken:
		// fall through to the substitution-tracking loop below
	default:
		return 0, false, fmt.Errorf("unterminated template literal at byte %d", i)
	}

	dynamic = true
	pos := i + len(text)
	depth := 1
	for {
		tt, text = lexer.Next()
		if tt == js.ErrorToken {
			return 0, false, fmt.Errorf("unterminated template literal at byte %d", i)
		}
		pos += len(text)
		switch tt {
		case js.TemplateStartToken:
			depth++
		case js.TemplateEndToken:
			depth--
			if depth == 0 {
				return pos, dynamic, nil
			}
		}
	}
}

// skipBraceBody returns the offset just past the `}` matching the `{` at i,
// correctly skipping over nested braces, strings, templates, and comments
// (each consumed as a single token rather than raw bytes, so a `}` inside
// a string or template never miscounts as closing the body).
func skipBraceBody(src string, i int) (int, error) {
	lexer := js.NewLexer(parse.NewInputString(src[i:]))
	pos := i
	depth := 0
	for {
		tt, text := lexer.Next()
		if tt == js.ErrorToken {
			return 0, fmt.Errorf("unterminated brace body at byte %d", i)
		}
		pos += len(text)
		switch tt {
		case js.OpenBraceToken:
			depth++
		case js.CloseBraceToken:
			depth--
			if depth == 0 {
				return pos, nil
			}
		}
	}
}

// skipInsignificant advances i past whitespace and comments, returning the
// offset of the next significant byte (or len(src)).
func skipInsignificant(src string, i int) int {
	lexer := js.NewLexer(parse.NewInputString(src[i:]))
	pos := i
	for {
		tt, text := lexer.Next()
		if tt == js.ErrorToken {
			return pos
		}
		if tt != js.WhitespaceToken && tt != js.LineTerminatorToken &&
			tt != js.CommentToken && tt != js.CommentLineTerminatorToken {
			return pos
		}
		pos += len(text)
	}
}

// commentEnd returns the offset just past a `//` or `/*...*/` comment
// starting at i, or len(src) if a block comment is unterminated.
func commentEnd(src string, i int) int {
	lexer := js.NewLexer(parse.NewInputString(src[i:]))
	tt, text := lexer.Next()
	if tt != js.CommentToken && tt != js.CommentLineTerminatorToken {
		return len(src)
	}
	return i + len(text)
}
