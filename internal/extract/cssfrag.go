package extract

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ClassNameFor implements the generated class name grammar:
// severed-<hex>, where <hex> is the first 7 hex characters of SHA-512 over
// the raw CSS text. Collisions are first-wins by construction: identical
// input always hashes to the identical name.
//
// The hashed text is the whitespace-normalized form of raw, not raw
// itself — see normalizeCSS.
func ClassNameFor(rawCSS string) string {
	sum := sha512.Sum512([]byte(normalizeCSS(rawCSS)))
	return "severed-" + hex.EncodeToString(sum[:])[:7]
}

// Fragment renders the selector-wrapped CSS for one site.
func Fragment(className, rawCSS string) string {
	return "." + className + " {\n" + strings.TrimSpace(rawCSS) + "\n}"
}

// JoinFragments concatenates per-site fragments with the two-blank-line
// separator used for the per-file CSS buffer.
func JoinFragments(fragments []string) string {
	return strings.Join(fragments, "\n\n\n")
}

// normalizeCSS re-tokenizes raw with tdewolff/parse/v2/css and
// re-serializes it: whitespace next to `:`, `;`, `,`, `{` or `}` is
// dropped, and any other run of whitespace between tokens becomes a single
// space. This makes `background:red;` and `background: red;` hash to the
// same class name, treating whitespace as insignificant for the
// "same CSS → same name" collision rule, the way real CSS-in-JS systems
// do.
func normalizeCSS(raw string) string {
	separator := func(tt css.TokenType) bool {
		switch tt {
		case css.ColonToken, css.SemicolonToken, css.CommaToken, css.LeftBraceToken, css.RightBraceToken:
			return true
		}
		return false
	}
	lexer := css.NewLexer(parse.NewInputString(raw))
	var b strings.Builder
	prev := css.ErrorToken
	space := false
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		if tt == css.WhitespaceToken {
			space = true
			continue
		}
		if space && b.Len() > 0 && !separator(prev) && !separator(tt) {
			b.WriteByte(' ')
		}
		space = false
		prev = tt
		b.Write(text)
	}
	return strings.TrimSpace(b.String())
}
