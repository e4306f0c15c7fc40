package extract

import "fmt"

// handleExport assembles the edits for one `export` keyword encountered at
// src[start:end], covering the three export shapes below, and returns the
// offset Classify's walk should resume scanning from.
//
//   - `export default <decl>`: strip "export default ", keep the rest.
//   - `export <decl>` (const/let/var/function/class/async): strip
//     "export " only, keep the declaration so its free variables still
//     anchor tree-shaking correctly.
//   - `export { a, b }` / `export { a, b } from '...'` / `export * from
//     '...'` / `export * as ns from '...'`: removed entirely.
func handleExport(src string, start, end int, edits *EditLog) (int, error) {
	n := len(src)
	j := skipInsignificant(src, end)

	if j < n && isIdentStart(src[j]) {
		wend := scanIdent(src, j)
		word := src[j:wend]
		if word == "default" {
			k := skipInsignificant(src, wend)
			edits.Replace(start, k, "")
			return k, nil
		}
		if isDeclarationKeyword(word) {
			edits.Replace(start, j, "")
			return j, nil
		}
	}

	if j < n && src[j] == '{' {
		closeEnd, err := skipBraceBody(src, j)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrParse, err)
		}
		stmtEnd := consumeExportTail(src, closeEnd)
		edits.Replace(start, stmtEnd, "")
		return stmtEnd, nil
	}

	if j < n && src[j] == '*' {
		stmtEnd := consumeUntilStatementEnd(src, j)
		edits.Replace(start, stmtEnd, "")
		return stmtEnd, nil
	}

	// Unrecognized shape (e.g. a bare `export` typo); strip the keyword
	// only and let the rest of the walk continue normally.
	edits.Replace(start, j, "")
	return j, nil
}

// consumeExportTail consumes an optional `from '...'` clause and a
// trailing `;`, used after a `export { ... }` brace has been closed.
func consumeExportTail(src string, pos int) int {
	n := len(src)
	j := skipInsignificant(src, pos)
	if j < n && isIdentStart(src[j]) {
		wend := scanIdent(src, j)
		if src[j:wend] == "from" {
			j = skipInsignificant(src, wend)
			if j < n && (src[j] == '\'' || src[j] == '"') {
				if end, err := scanQuotedString(src, j); err == nil {
					j = skipInsignificant(src, end)
				}
			}
		}
	}
	if j < n && src[j] == ';' {
		j++
	}
	return j
}

// consumeUntilStatementEnd scans forward from a `export *` to the end of
// the statement: the closing `'` of its `from` clause plus an optional
// `;`, or a bare newline if no semicolon follows (ASI).
func consumeUntilStatementEnd(src string, pos int) int {
	n := len(src)
	j := pos
	for j < n && src[j] != ';' && src[j] != '\n' {
		if src[j] == '\'' || src[j] == '"' {
			if end, err := scanQuotedString(src, j); err == nil {
				j = end
				continue
			}
		}
		j++
	}
	if j < n && src[j] == ';' {
		j++
	}
	return j
}
