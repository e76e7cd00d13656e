package bfcode

import (
	"io"
	"strings"
)

// Tokenizer yields command characters with their positions, skipping commentary.
type Tokenizer struct {
	reader *strings.Reader
	pos    Pos
	peeked *Token
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		reader: strings.NewReader(source.Content),
		pos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
}

var primitives = map[rune]Op{
	'>': OpMoveRight,
	'<': OpMoveLeft,
	'+': OpIncrement,
	'-': OpDecrement,
	'.': OpOutput,
	',': OpInput,
}

// Current returns the next token without consuming it.
// It keeps returning a TokenEOF token at end of source.
func (t *Tokenizer) Current() (*Token, error) {
	if t.peeked != nil {
		return t.peeked, nil
	}
	token, err := t.next()
	if err != nil {
		return nil, err
	}
	t.peeked = token
	return token, nil
}

func (t *Tokenizer) Consume() {
	t.peeked = nil
}

func (t *Tokenizer) next() (*Token, error) {
	for {
		pos := t.pos
		r, _, err := t.reader.ReadRune()
		if err == io.EOF {
			return &Token{Kind: TokenEOF, Pos: pos}, nil
		} else if err != nil {
			return nil, err
		}
		t.advance(r)

		if op, ok := primitives[r]; ok {
			return &Token{Kind: TokenPrimitive, Op: op, Pos: pos}, nil
		}
		switch r {
		case '[':
			return &Token{Kind: TokenLoopStart, Op: OpLoop, Pos: pos}, nil
		case ']':
			return &Token{Kind: TokenLoopEnd, Op: OpLoop, Pos: pos}, nil
		}
	}
}

func (t *Tokenizer) advance(r rune) {
	t.pos.Offset++
	if r == '\n' {
		t.pos.Line++
		t.pos.Column = 1
		return
	}
	t.pos.Column++
}
