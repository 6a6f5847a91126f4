// Package diag renders parse errors for humans.
//
//	ToHex     hex dump of a byte input, 8 or 16 bytes per row
//	Offsets   hex dump where each byte is coloured by the innermost error
//	          kind covering it
//	Render    line/column report with a caret under each traced position
//
// Colours come from a Styles value. Plain() produces uncoloured output
// suitable for logs and tests.
package diag
