package bfcode

import (
	"fmt"
	"io"
)

// Parse reads all of src and builds the command tree.
// Bracket mismatches fail with *MalformedProgramError.
func Parse(name string, src io.Reader) (Program, error) {
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return ParseSource(NewSource(name, string(content)))
}

func ParseString(name string, src string) (Program, error) {
	return ParseSource(NewSource(name, src))
}

type scope struct {
	start    Pos
	commands Program
}

func ParseSource(source *Source) (Program, error) {
	tokenizer := NewTokenizer(source)
	stack := []*scope{
		{},
	}

	for {
		token, err := tokenizer.Current()
		if err != nil {
			return nil, err
		}
		tokenizer.Consume()

		top := stack[len(stack)-1]
		switch token.Kind {

		case TokenPrimitive:
			top.commands = append(top.commands, Command{
				Op:  token.Op,
				Pos: token.Pos,
			})

		case TokenLoopStart:
			stack = append(stack, &scope{
				start: token.Pos,
			})

		case TokenLoopEnd:
			if len(stack) == 1 {
				return nil, &MalformedProgramError{
					Pos:    token.Pos,
					Reason: "unmatched ']'",
				}
			}
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			parent.commands = append(parent.commands, Command{
				Op:   OpLoop,
				Pos:  top.start,
				Body: top.commands,
			})

		case TokenEOF:
			if len(stack) > 1 {
				return nil, &MalformedProgramError{
					Pos:    top.start,
					Reason: "unterminated '['",
				}
			}
			return top.commands, nil

		}
	}
}

// MustParse is ParseString that panics on error, for programs embedded in code.
func MustParse(src string) Program {
	program, err := ParseString("", src)
	if err != nil {
		panic(err)
	}
	return program
}
