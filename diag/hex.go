package diag

import (
	"fmt"
	"strings"
)

const hexChars = "0123456789abcdef"

// ToHex formats input as rows of chunk bytes: the row offset, the bytes in
// hex, and their printable ASCII form with '.' for everything else.
func ToHex(input []byte, chunk int) string {
	return ToHexFrom(input, chunk, 0)
}

// ToHexFrom is ToHex with row offsets starting at from.
func ToHexFrom(input []byte, chunk, from int) string {
	if chunk <= 0 {
		chunk = 8
	}
	var b strings.Builder
	b.Grow((len(input)/chunk + 1) * (chunk*4 + 12))

	for i := 0; i < len(input); i += chunk {
		row := input[i:min(i+chunk, len(input))]
		fmt.Fprintf(&b, "%08x\t", from+i)
		for _, c := range row {
			b.WriteByte(hexChars[c>>4])
			b.WriteByte(hexChars[c&0xf])
			b.WriteByte(' ')
		}
		b.WriteString(strings.Repeat("   ", chunk-len(row)))
		b.WriteByte('\t')
		for _, c := range row {
			b.WriteByte(printable(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func printable(c byte) byte {
	if c >= 32 && c <= 126 {
		return c
	}
	return '.'
}
