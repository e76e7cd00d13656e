package bfcode

import "strings"

type Op uint8

const (
	OpInvalid Op = iota
	OpMoveRight
	OpMoveLeft
	OpIncrement
	OpDecrement
	OpOutput
	OpInput
	OpLoop
)

var opChars = [...]byte{
	OpMoveRight: '>',
	OpMoveLeft:  '<',
	OpIncrement: '+',
	OpDecrement: '-',
	OpOutput:    '.',
	OpInput:     ',',
}

var opNames = [...]string{
	OpInvalid:   "Invalid",
	OpMoveRight: "MoveRight",
	OpMoveLeft:  "MoveLeft",
	OpIncrement: "Increment",
	OpDecrement: "Decrement",
	OpOutput:    "Output",
	OpInput:     "Input",
	OpLoop:      "Loop",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Invalid"
}

// Command is a primitive operation or a loop owning its body.
// Body is only meaningful for OpLoop.
type Command struct {
	Op   Op
	Pos  Pos
	Body Program
}

func (c Command) String() string {
	var b strings.Builder
	c.format(&b)
	return b.String()
}

func (c Command) format(b *strings.Builder) {
	if c.Op == OpLoop {
		b.WriteByte('[')
		for _, cmd := range c.Body {
			cmd.format(b)
		}
		b.WriteByte(']')
		return
	}
	if int(c.Op) < len(opChars) && opChars[c.Op] != 0 {
		b.WriteByte(opChars[c.Op])
	}
}

type Program []Command

// String renders p as canonical source text: one character per command, no comments.
func (p Program) String() string {
	var b strings.Builder
	for _, cmd := range p {
		cmd.format(&b)
	}
	return b.String()
}

func Format(p Program) string {
	return p.String()
}

// Equal reports whether p and q are the same command tree, ignoring positions.
func (p Program) Equal(q Program) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].Op != q[i].Op {
			return false
		}
		if p[i].Op == OpLoop && !p[i].Body.Equal(q[i].Body) {
			return false
		}
	}
	return true
}

// Count returns the number of commands in p, loops and their bodies included.
func (p Program) Count() int {
	n := 0
	for _, cmd := range p {
		n++
		if cmd.Op == OpLoop {
			n += cmd.Body.Count()
		}
	}
	return n
}
