package extract

// This file holds the identifier/keyword classification Classify's driving
// loop (classifier.go) needs on top of the token boundaries lexer.go
// resolves: ASCII identifier scanning and the keyword tables that decide
// whether a `(` following an identifier is a call expression or a
// control-flow construct.

// isIdentStart reports whether c can start a JS identifier (ASCII subset;
// full Unicode identifier starts are not recognized, matching the `css`
// literal-tag-only scope of this package).
func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// scanIdent returns the end offset of the identifier starting at i.
func scanIdent(src string, i int) int {
	j := i + 1
	for j < len(src) && isIdentPart(src[j]) {
		j++
	}
	return j
}

// isCallFreeKeyword reports whether word is a control-flow or operator
// keyword whose following `(` is not a call expression.
func isCallFreeKeyword(word string) bool {
	switch word {
	case "if", "for", "while", "switch", "catch", "return", "typeof", "new",
		"delete", "void", "in", "of", "do", "else", "yield", "await", "case",
		"throw", "with", "instanceof", "function":
		return true
	}
	return false
}

// isDeclarationKeyword reports whether word introduces a top-level
// declaration that `export` (or `export default`) can attach to directly.
func isDeclarationKeyword(word string) bool {
	switch word {
	case "const", "let", "var", "function", "class", "async":
		return true
	}
	return false
}
