package diag

import (
	"fmt"
	"strings"

	"github.com/wippyai/parsekit/errors"
)

// Span is the part of the input a traced error applies to.
type Span struct {
	Kind  errors.Kind
	Start int
	End   int
}

// Offset returns the position of rest within original. Parse steps only
// ever return suffixes of their input, so this is len(original)-len(rest).
func Offset[I ~string | ~[]byte](original, rest I) int {
	return len(original) - len(rest)
}

// Spans converts the kind and character frames of e into spans over
// original, outermost first. Context frames carry no kind and are skipped.
func Spans(original []byte, e errors.Verbose[[]byte]) []Span {
	spans := make([]Span, 0, len(e.Frames))
	for i := len(e.Frames) - 1; i >= 0; i-- {
		f := e.Frames[i]
		kind := f.Kind
		switch f.Type {
		case errors.FrameContext:
			continue
		case errors.FrameChar:
			kind = errors.KindChar
		}
		spans = append(spans, Span{
			Kind:  kind,
			Start: Offset(original, f.Input),
			End:   len(original),
		})
	}
	return spans
}

// CodeAt returns the kind of the innermost span covering offset, that is
// the one with the narrowest range.
func CodeAt(spans []Span, offset int) (errors.Kind, bool) {
	var (
		best  Span
		found bool
	)
	for _, s := range spans {
		if s.Start > offset || offset > s.End {
			continue
		}
		if !found || (best.Start <= s.Start && s.End <= best.End) {
			best, found = s, true
		}
	}
	return best.Kind, found
}

// colors assigns each distinct kind a palette index in order of first
// appearance.
func colors(spans []Span) map[errors.Kind]int {
	m := make(map[errors.Kind]int, len(spans))
	for _, s := range spans {
		if _, ok := m[s.Kind]; !ok {
			m[s.Kind] = len(m)
		}
	}
	return m
}

// Codes returns a legend listing each kind in spans with its code, in the
// colour used by Offsets.
func Codes(spans []Span, styles Styles) string {
	idx := colors(spans)
	seen := make(map[errors.Kind]bool, len(idx))
	parts := make([]string, 0, len(idx))
	for _, s := range spans {
		if seen[s.Kind] {
			continue
		}
		seen[s.Kind] = true
		parts = append(parts, styles.paint(idx[s.Kind], fmt.Sprintf("%d:%s", s.Kind.Code(), s.Kind)))
	}
	return strings.Join(parts, " ")
}

// Offsets renders a hex dump of input in rows of chunk bytes, colouring
// each byte by the kind returned by CodeAt. Uncovered bytes are left plain.
func Offsets(input []byte, chunk int, spans []Span, styles Styles) string {
	if chunk <= 0 {
		chunk = 8
	}
	idx := colors(spans)

	var b strings.Builder
	for i := 0; i < len(input); i += chunk {
		row := input[i:min(i+chunk, len(input))]
		fmt.Fprintf(&b, "%08x\t", i)

		var hex, text strings.Builder
		for j, c := range row {
			cell := []byte{hexChars[c>>4], hexChars[c&0xf]}
			ch := string(printable(c))
			if k, ok := CodeAt(spans, i+j); ok {
				hex.WriteString(styles.paint(idx[k], string(cell)))
				text.WriteString(styles.paint(idx[k], ch))
			} else {
				hex.Write(cell)
				text.WriteString(ch)
			}
			hex.WriteByte(' ')
		}
		b.WriteString(hex.String())
		b.WriteString(strings.Repeat("   ", chunk-len(row)))
		b.WriteByte('\t')
		b.WriteString(text.String())
		b.WriteByte('\n')
	}
	return b.String()
}
