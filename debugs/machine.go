package debugs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/bfvm"
)

// MachineGlobals exposes machine state to a tap session.
func MachineGlobals(m *bfvm.Machine) map[string]any {
	tape := m.Tape()
	return map[string]any{
		"tape":     tape,
		"cursor":   tape.Cursor,
		"steps":    m.Steps(),
		"tape_len": tape.Len(),
		"cell": func(i int) (int, error) {
			if i < 0 || i >= tape.Len() {
				return 0, fmt.Errorf("cell %d out of range [0, %d)", i, tape.Len())
			}
			return int(tape.Cells[i]), nil
		},
		"window": func(radius int) string {
			return Window(tape, radius)
		},
	}
}

// Window renders cells around the cursor, marking the current one.
func Window(tape *bfvm.Tape, radius int) string {
	start := max(tape.Cursor-radius, 0)
	end := min(tape.Cursor+radius+1, tape.Len())
	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteByte(' ')
		}
		if i == tape.Cursor {
			fmt.Fprintf(&b, "[%d]", tape.Cells[i])
		} else {
			fmt.Fprintf(&b, "%d", tape.Cells[i])
		}
	}
	return b.String()
}

// FailureGlobals is MachineGlobals plus the failure and, when known, where it happened.
func FailureGlobals(m *bfvm.Machine, err error) map[string]any {
	globals := MachineGlobals(m)
	globals["error"] = err
	if pos, ok := failurePos(err); ok {
		globals["pos"] = pos
	}
	return globals
}

func failurePos(err error) (bfcode.Pos, bool) {
	var underflow *bfvm.PointerUnderflowError
	if errors.As(err, &underflow) {
		return underflow.Pos, true
	}
	var ioErr *bfvm.IOError
	if errors.As(err, &ioErr) {
		return ioErr.Pos, true
	}
	var malformed *bfcode.MalformedProgramError
	if errors.As(err, &malformed) {
		return malformed.Pos, true
	}
	return bfcode.Pos{}, false
}
