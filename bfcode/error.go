package bfcode

import (
	"errors"
	"fmt"
)

var ErrMalformedProgram = errors.New("malformed program")

// MalformedProgramError reports an unmatched or unterminated bracket.
type MalformedProgramError struct {
	Pos    Pos
	Reason string
}

func (m *MalformedProgramError) Error() string {
	msg := fmt.Sprintf("%s: %s at %s (offset %d)", ErrMalformedProgram, m.Reason, m.Pos, m.Pos.Offset)
	if excerpt := m.Pos.Excerpt(); excerpt != "" {
		msg += "\n" + excerpt
	}
	return msg
}

func (m *MalformedProgramError) Is(target error) bool {
	return target == ErrMalformedProgram
}
