package extract

import (
	"fmt"
	"sort"
	"strings"
)

// Edit replaces src[Start:End) with Replacement. Edits are never applied
// in place; the original text is immutable and edits are accumulated into
// a log, then applied once to produce a new string.
type Edit struct {
	Start, End  int
	Replacement string
}

// EditLog accumulates edits over a fixed base text. It is append-only:
// once constructed, base text is never mutated, only read.
type EditLog struct {
	base  string
	edits []Edit
}

// NewEditLog starts a new edit log over base. base is never mutated.
func NewEditLog(base string) *EditLog {
	return &EditLog{base: base}
}

// Replace queues an edit. Edits may be added out of order; Apply sorts them
// by Start before applying. Overlapping edits are a programmer error: the
// classifier and coordinator are expected to maintain non-overlapping,
// source-ordered extraction sites.
func (l *EditLog) Replace(start, end int, replacement string) {
	l.edits = append(l.edits, Edit{Start: start, End: end, Replacement: replacement})
}

// Insert queues a zero-width insertion at pos (equivalent to Replace(pos, pos, text)).
func (l *EditLog) Insert(pos int, text string) {
	l.Replace(pos, pos, text)
}

// Apply produces the rewritten text. It returns an error if two edits
// overlap.
func (l *EditLog) Apply() (string, error) {
	edits := make([]Edit, len(l.edits))
	copy(edits, l.edits)
	// Stable: two zero-width inserts queued at the same Start (e.g. a
	// hoisted declaration and a pure-call annotation landing on the same
	// byte, per classifier.go) must apply in queue order, not an
	// unspecified one.
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Start != edits[j].Start {
			return edits[i].Start < edits[j].Start
		}
		return edits[i].End < edits[j].End
	})

	var out strings.Builder
	out.Grow(len(l.base))
	cursor := 0
	for _, e := range edits {
		if e.Start < cursor {
			return "", fmt.Errorf("overlapping edit at byte %d (cursor at %d)", e.Start, cursor)
		}
		out.WriteString(l.base[cursor:e.Start])
		out.WriteString(e.Replacement)
		cursor = e.End
	}
	if cursor < len(l.base) {
		out.WriteString(l.base[cursor:])
	}
	return out.String(), nil
}

// Edits returns the queued edits sorted by start position, for source map
// construction (see BuildSourceMap).
func (l *EditLog) Edits() []Edit {
	edits := make([]Edit, len(l.edits))
	copy(edits, l.edits)
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Start < edits[j].Start
	})
	return edits
}

// Base returns the original, unmodified text the log was constructed over.
func (l *EditLog) Base() string {
	return l.base
}
