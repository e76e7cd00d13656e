package bfcode

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// Pos locates a character in program source.
// Offset counts characters (runes) from the start; Line and Column are 1-based.
type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	name := "<input>"
	if p.Source != nil && p.Source.Name != "" {
		name = p.Source.Name
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line, p.Column)
}

// Excerpt renders the source line of p with a caret under the column.
// It is empty without a source.
func (p Pos) Excerpt() string {
	if p.Source == nil || p.Line < 1 || p.Line > len(p.Source.Lines) {
		return ""
	}
	line := p.Source.Lines[p.Line-1]
	var b strings.Builder
	b.WriteString(line)
	b.WriteByte('\n')
	col := 1
	for _, r := range line {
		if col >= p.Column {
			break
		}
		col++
		switch r {
		case '\t':
			b.WriteByte('\t')
		default:
			b.WriteString(strings.Repeat(" ", columns(r)))
		}
	}
	b.WriteString("^\n")
	return b.String()
}

// columns is the terminal width of r.
func columns(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	if r < ' ' {
		return 0
	}
	return 1
}
