package bfvm

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

var ErrBadSnapshot = errors.New("bad snapshot")

type snapshot struct {
	Cells  []byte
	Cursor int
	Steps  int
}

// Snapshot writes the tape and step count of the latest run.
func (m *Machine) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(snapshot{
		Cells:  m.tape.Cells,
		Cursor: m.tape.Cursor,
		Steps:  m.steps,
	}); err != nil {
		return err
	}
	return nil
}

// Restore replaces the tape and step count with a snapshot.
// The machine is left unchanged if the snapshot is unreadable or inconsistent.
func (m *Machine) Restore(r io.Reader) error {
	dec := gob.NewDecoder(r)
	var s snapshot
	if err := dec.Decode(&s); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if len(s.Cells) == 0 {
		return fmt.Errorf("%w: empty tape", ErrBadSnapshot)
	}
	if s.Cursor < 0 || s.Cursor >= len(s.Cells) {
		return fmt.Errorf("%w: cursor %d outside tape of %d cells", ErrBadSnapshot, s.Cursor, len(s.Cells))
	}
	if s.Steps < 0 {
		return fmt.Errorf("%w: negative step count %d", ErrBadSnapshot, s.Steps)
	}
	m.tape = &Tape{
		Cells:  s.Cells,
		Cursor: s.Cursor,
	}
	m.steps = s.Steps
	return nil
}
