package diag

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/parsekit/errors"
)

// Render explains e against the input it was produced from: one block per
// frame, innermost first, each showing the source line and a caret under
// the column where that frame was recorded.
//
//	0: at line 2:
//	 2 | port:80
//	   |     ^
//	expected '=', found ':'
//
//	1: at line 2, in assignment:
//	 2 | port:80
//	   | ^
func Render(input string, e errors.Verbose[string], styles Styles) string {
	var b strings.Builder
	for i, f := range e.Frames {
		if i > 0 {
			b.WriteByte('\n')
		}
		renderFrame(&b, i, input, f, styles)
	}
	if e.Cause != nil {
		b.WriteByte('\n')
		b.WriteString(styles.render(styles.Header, "caused by: "))
		b.WriteString(e.Cause.Error())
		b.WriteByte('\n')
	}
	return b.String()
}

func renderFrame(b *strings.Builder, i int, input string, f errors.Frame[string], styles Styles) {
	if input == "" {
		switch f.Type {
		case errors.FrameChar:
			fmt.Fprintf(b, "%d: expected %s, got empty input\n", i, strconv.QuoteRune(f.Char))
		default:
			fmt.Fprintf(b, "%d: %s, got empty input\n", i, frameLabel(f, styles))
		}
		return
	}

	offset := Offset(input, f.Input)
	line, number, column := locate(input, offset)

	header := fmt.Sprintf("%d: at line %d", i, number)
	if f.Type != errors.FrameChar {
		header += ", " + frameLabel(f, styles)
	}
	b.WriteString(styles.render(styles.Header, header))
	b.WriteString(":\n")

	width := len(strconv.Itoa(number))
	b.WriteString(styles.render(styles.Gutter, fmt.Sprintf(" %*d | ", width, number)))
	b.WriteString(line)
	b.WriteByte('\n')
	b.WriteString(styles.render(styles.Gutter, fmt.Sprintf(" %*s | ", width, "")))
	b.WriteString(strings.Repeat(" ", column-1))
	b.WriteString(styles.render(styles.Caret, "^"))
	b.WriteByte('\n')

	if f.Type == errors.FrameChar {
		fmt.Fprintf(b, "expected %s, ", strconv.QuoteRune(f.Char))
		if f.Input == "" {
			b.WriteString("got end of input\n")
		} else {
			r, _ := utf8.DecodeRuneInString(f.Input)
			fmt.Fprintf(b, "found %s\n", strconv.QuoteRune(r))
		}
	}
}

func frameLabel(f errors.Frame[string], styles Styles) string {
	if f.Type == errors.FrameContext {
		return "in " + styles.render(styles.Label, f.Label)
	}
	return "in " + f.Kind.String()
}

// locate returns the line containing offset, its 1-based number and the
// 1-based column of offset within it, counted in runes.
func locate(input string, offset int) (line string, number, column int) {
	offset = max(0, min(offset, len(input)))
	prefix := input[:offset]

	start := strings.LastIndexByte(prefix, '\n') + 1
	end := len(input)
	if n := strings.IndexByte(input[offset:], '\n'); n >= 0 {
		end = offset + n
	}

	line = strings.TrimSuffix(input[start:end], "\r")
	number = strings.Count(prefix, "\n") + 1
	column = utf8.RuneCountInString(input[start:offset]) + 1
	return line, number, column
}
