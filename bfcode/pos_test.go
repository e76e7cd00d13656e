package bfcode

import "testing"

func TestExcerpt(t *testing.T) {
	source := NewSource("prog.b", "+\n中文 ]\n\t[")
	for _, test := range []struct {
		pos  Pos
		want string
	}{
		{Pos{Source: source, Line: 1, Column: 1}, "+\n^\n"},
		{Pos{Source: source, Line: 2, Column: 4}, "中文 ]\n     ^\n"},
		{Pos{Source: source, Line: 3, Column: 2}, "\t[\n\t^\n"},
		{Pos{Source: source, Line: 4, Column: 1}, ""},
		{Pos{Line: 1, Column: 1}, ""},
	} {
		if got := test.pos.Excerpt(); got != test.want {
			t.Fatalf("%v: got %q, want %q", test.pos, got, test.want)
		}
	}
}
