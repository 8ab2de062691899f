// Package textutil holds small text-munging helpers shared by the sprite
// library parser and the line-at-a-time driver, both of which need the
// same "expand tabs, then treat everything as width-1 characters" rule.
package textutil

import "strings"

// ExpandTabs replaces each tab with enough spaces to reach the next column
// that is a multiple of tabSize, matching Python's str.expandtabs().
func ExpandTabs(line string, tabSize int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	col := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\t':
			spaces := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", spaces))
			col += spaces
		default:
			b.WriteByte(line[i])
			col++
		}
	}
	return b.String()
}
