package extract

import "fmt"

// severedExportPrefix names the hoisted top-level bindings the derivative
// program exports, one per site.
const severedExportPrefix = "__severed_css_"

// ClassifyResult is the output of Classify: the ordered site list, the
// derivative program text, and whether any site needs evaluation.
type ClassifyResult struct {
	Sites      []*Site
	Derivative string
	Dynamic    bool
}

// Classify walks src once and performs the derivative-program synthesis
// described in the package doc: it records one Site per `css`…`` tagged
// template (in source order, by
// construction of the left-to-right scan), and it builds the derivative
// program by accumulating edits over a copy of src:
//
//   - every `css`…`` site is overwritten with a sentinel string literal;
//   - every site, static or dynamic, gets a hoisted `export const
//     __severed_css_<i> = <template>;` inserted immediately before the
//     nearest enclosing top-level statement;
//   - `export` (and `export default`) keywords are stripped from
//     declarations, keeping the declaration itself;
//   - bare `export { ... }` and `export * ...` statements are removed
//     entirely;
//   - every call expression gets a `/* @__PURE__ */` annotation prepended,
//     the load-bearing enabler for the sub-bundler's tree-shaking pass.
//
// Recognition of `css` is purely textual: an identifier token spelled
// "css" immediately followed by a backtick. A locally shadowed `css`
// binding is not distinguished from the tag and may be matched anyway —
// a known, deliberate limitation; this package does not attempt scope
// analysis to resolve it.
//
// The walk tracks "top-level" using a single combined nesting depth over
// `(`, `{`, and `[`, and treats the first significant token following a
// depth-0 `;`, a depth-0 closing `}`, or a depth-0 newline as the start of
// a new top-level statement. This is an approximation of a real
// statement-boundary parse — good enough for the well-formatted source
// this package targets, and never consulted for anything but choosing a
// hoist point, so a rare misclassification only changes where a harmless
// `__severed_css_i` binding lands, not whether extraction succeeds.
func Classify(src string) (*ClassifyResult, error) {
	edits := NewEditLog(src)

	var sites []*Site
	var pureAt []int
	dynamic := false

	depth := 0
	pending := true
	topStart := 0
	n := len(src)
	i := 0

	markTop := func(pos int) {
		if pending {
			topStart = pos
			pending = false
		}
	}

	for i < n {
		c := src[i]

		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++

		case c == '\n':
			if depth == 0 {
				pending = true
			}
			i++

		case c == '/' && i+1 < n && src[i+1] == '/':
			for i < n && src[i] != '\n' {
				i++
			}

		case c == '/' && i+1 < n && src[i+1] == '*':
			i = commentEnd(src, i)

		case c == '\'' || c == '"':
			markTop(i)
			end, err := scanQuotedString(src, i)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrParse, err)
			}
			i = end

		case c == '`':
			markTop(i)
			end, _, err := scanTemplateLiteral(src, i)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrParse, err)
			}
			i = end

		case c == '(' || c == '{' || c == '[':
			markTop(i)
			depth++
			i++

		case c == ')' || c == ']':
			depth--
			i++

		case c == '}':
			depth--
			i++
			if depth == 0 {
				pending = true
			}

		case c == ';':
			i++
			if depth == 0 {
				pending = true
			}

		case isIdentStart(c):
			markTop(i)
			start := i
			end := scanIdent(src, i)
			word := src[start:end]

			switch {
			case word == "css":
				j := skipInsignificant(src, end)
				if j < n && src[j] == '`' {
					tplEnd, tdyn, err := scanTemplateLiteral(src, j)
					if err != nil {
						return nil, fmt.Errorf("%w: %s", ErrParse, err)
					}
					site := &Site{Start: start, End: tplEnd, Index: len(sites), Static: !tdyn}
					if !tdyn {
						site.StaticValue = src[j+1 : tplEnd-1]
					} else {
						dynamic = true
					}
					decl := "export const " + severedName(site.Index) + " = " + src[j:tplEnd] + ";\n"
					edits.Insert(topStart, decl)
					edits.Replace(start, tplEnd, sentinelFor(site.Index))
					sites = append(sites, site)
					i = tplEnd
					continue
				}
				i = end

			case word == "export":
				adv, err := handleExport(src, start, end, edits)
				if err != nil {
					return nil, err
				}
				pending = true
				i = adv

			default:
				if !isCallFreeKeyword(word) {
					if j, isCall := lookaheadCall(src, end); isCall {
						pureAt = append(pureAt, start)
						i = j
						continue
					}
				}
				i = end
			}

		default:
			markTop(i)
			i++
		}
	}

	// Queued after every hoisted declaration, so that where both land on the
	// same byte the declaration comes first and the annotation stays
	// directly in front of its call.
	for _, p := range pureAt {
		edits.Insert(p, "/* @__PURE__ */ ")
	}

	derivative, err := edits.Apply()
	if err != nil {
		return nil, err
	}

	return &ClassifyResult{Sites: sites, Derivative: derivative, Dynamic: dynamic}, nil
}

// lookaheadCall reports whether the identifier ending at end is the start
// of a call expression, skipping over any `.member` chain first (so the
// pure annotation lands before the whole callee expression, not its last
// segment).
func lookaheadCall(src string, end int) (int, bool) {
	n := len(src)
	j := skipInsignificant(src, end)
	for j < n && src[j] == '.' {
		j = skipInsignificant(src, j+1)
		if j >= n || !isIdentStart(src[j]) {
			return j, false
		}
		j = skipInsignificant(src, scanIdent(src, j))
	}
	return j, j < n && src[j] == '('
}

func severedName(i int) string {
	return fmt.Sprintf("%s%d", severedExportPrefix, i)
}

func sentinelFor(i int) string {
	return fmt.Sprintf("%q", fmt.Sprintf("severed-sentinel-%d", i))
}
