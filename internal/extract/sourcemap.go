package extract

import (
	"encoding/json"
	"strings"
)

// BuildSourceMap produces a standard (v3) inline source map for the
// rewritten text produced by log.Apply(): generated from the edit log
// over the original text, with standard inline mappings and no names
// table required. Mapping granularity is one segment per copied span and
// one per replacement span — sufficient to resolve any position in the
// rewritten file back to its original line/column without a names table.
func BuildSourceMap(log *EditLog, sourceID string) (string, error) {
	rewritten, err := log.Apply()
	if err != nil {
		return "", err
	}

	var segments []mappingSeg

	base := log.Base()
	genOffset := 0
	origCursor := 0
	for _, e := range log.Edits() {
		if e.Start > origCursor {
			gl, gc := lineCol(rewritten, genOffset)
			ol, oc := lineCol(base, origCursor)
			segments = append(segments, mappingSeg{gl, gc, ol, oc})
			genOffset += e.Start - origCursor
		}
		if len(e.Replacement) > 0 {
			gl, gc := lineCol(rewritten, genOffset)
			ol, oc := lineCol(base, e.Start)
			segments = append(segments, mappingSeg{gl, gc, ol, oc})
			genOffset += len(e.Replacement)
		}
		origCursor = e.End
	}
	if origCursor < len(base) {
		gl, gc := lineCol(rewritten, genOffset)
		ol, oc := lineCol(base, origCursor)
		segments = append(segments, mappingSeg{gl, gc, ol, oc})
	}

	mappings := encodeMappings(segments)

	doc := struct {
		Version        int      `json:"version"`
		Sources        []string `json:"sources"`
		SourcesContent []string `json:"sourcesContent"`
		Names          []string `json:"names"`
		Mappings       string   `json:"mappings"`
	}{
		Version:        3,
		Sources:        []string{sourceID},
		SourcesContent: []string{base},
		Names:          []string{},
		Mappings:       mappings,
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type mappingSeg struct {
	genLine, genCol   int
	origLine, origCol int
}

func encodeMappings(segs []mappingSeg) string {
	var b strings.Builder
	prevGenLine := 0
	prevGenCol := 0
	prevOrigLine := 0
	prevOrigCol := 0
	firstOnLine := true

	for _, s := range segs {
		if s.genLine != prevGenLine {
			b.WriteString(strings.Repeat(";", s.genLine-prevGenLine))
			prevGenLine = s.genLine
			prevGenCol = 0
			firstOnLine = true
		}
		if !firstOnLine {
			b.WriteByte(',')
		}
		firstOnLine = false

		b.WriteString(encodeVLQ(s.genCol - prevGenCol))
		b.WriteString(encodeVLQ(0)) // source index (always 0, single-source map)
		b.WriteString(encodeVLQ(s.origLine - prevOrigLine))
		b.WriteString(encodeVLQ(s.origCol - prevOrigCol))

		prevGenCol = s.genCol
		prevOrigLine = s.origLine
		prevOrigCol = s.origCol
	}
	return b.String()
}

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeVLQ implements the base64-VLQ encoding used by source maps v3: a
// sign bit in the lowest bit, 5 payload bits per base64 digit, a
// continuation bit in the 6th bit of each digit but the last.
func encodeVLQ(n int) string {
	var v uint32
	if n < 0 {
		v = (uint32(-n) << 1) | 1
	} else {
		v = uint32(n) << 1
	}

	var b strings.Builder
	for {
		digit := v & 0x1f
		v >>= 5
		if v > 0 {
			digit |= 0x20
		}
		b.WriteByte(base64Chars[digit])
		if v == 0 {
			break
		}
	}
	return b.String()
}

// lineCol converts a byte offset into a 0-based (line, column) pair. Column
// is counted in bytes, not UTF-16 code units: adequate for the ASCII-biased
// JS/CSS source this package processes. Source map fidelity for non-ASCII
// text is left as an implementer choice.
func lineCol(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}
