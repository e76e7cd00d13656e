package bfcode

type Token struct {
	Kind TokenKind
	Op   Op
	Pos  Pos
}

type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenPrimitive
	TokenLoopStart
	TokenLoopEnd
)
