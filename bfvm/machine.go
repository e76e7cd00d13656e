package bfvm

import (
	"context"
	"errors"
	"io"
	"iter"

	"github.com/reusee/bf/bfcode"
)

const ctxCheckInterval = 1024

// Machine executes programs against a tape it owns exclusively.
// It is not safe for concurrent use.
type Machine struct {
	options Options
	in      io.ByteReader
	out     io.ByteWriter
	tape    *Tape
	steps   int

	ctx   context.Context
	yield func(*Interrupt, error) bool
}

func New(options Options) *Machine {
	m := &Machine{
		options: options,
		in:      options.In,
		out:     options.Out,
	}
	if m.in == nil {
		m.in = emptyReader{}
	}
	if m.out == nil {
		m.out = discardWriter{}
	}
	m.tape = NewTape(options.TapeSize)
	return m
}

// Tape returns the tape of the latest run.
func (m *Machine) Tape() *Tape {
	return m.tape
}

// Steps returns the number of steps taken by the latest run.
func (m *Machine) Steps() int {
	return m.steps
}

var errStopped = errors.New("stopped")

// Run executes program on a fresh tape.
// Failures are yielded once and end the run.
// With YieldEvery set, InterruptYield is yielded periodically; returning false stops the run.
func (m *Machine) Run(ctx context.Context, program bfcode.Program) iter.Seq2[*Interrupt, error] {
	return func(yield func(*Interrupt, error) bool) {
		m.reset(ctx, yield)
		defer func() {
			m.ctx = nil
			m.yield = nil
		}()

		if logger := m.options.Logger; logger != nil {
			logger.DebugContext(ctx, "run start",
				"commands", program.Count(),
				"tape", m.tape.Len(),
			)
		}

		err := m.exec(program)

		if logger := m.options.Logger; logger != nil {
			logger.DebugContext(ctx, "run end",
				"steps", m.steps,
				"tape", m.tape.Len(),
				"cursor", m.tape.Cursor,
				"error", err,
			)
		}

		if err == nil || err == errStopped {
			return
		}
		yield(nil, err)
	}
}

// Execute runs program to completion and returns the first failure.
func (m *Machine) Execute(ctx context.Context, program bfcode.Program) error {
	var ret error
	for _, err := range m.Run(ctx, program) {
		if err != nil {
			ret = err
			break
		}
	}
	return ret
}

// Execute runs program with default options over in and out.
func Execute(ctx context.Context, program bfcode.Program, in io.Reader, out io.Writer) error {
	return New(Options{
		In:  Reader(in),
		Out: Writer(out),
	}).Execute(ctx, program)
}

func (m *Machine) reset(ctx context.Context, yield func(*Interrupt, error) bool) {
	m.tape = NewTape(m.options.TapeSize)
	m.steps = 0
	m.ctx = ctx
	m.yield = yield
}

func (m *Machine) exec(program bfcode.Program) error {
	for i := range program {
		cmd := &program[i]

		if cmd.Op == bfcode.OpLoop {
			for {
				if err := m.step(); err != nil {
					return err
				}
				if m.tape.Cells[m.tape.Cursor] == 0 {
					break
				}
				if err := m.exec(cmd.Body); err != nil {
					return err
				}
			}
			continue
		}

		if err := m.step(); err != nil {
			return err
		}
		if err := m.primitive(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) step() error {
	m.steps++
	if m.options.MaxSteps > 0 && m.steps > m.options.MaxSteps {
		return &StepLimitError{
			Limit: m.options.MaxSteps,
		}
	}
	if m.steps%ctxCheckInterval == 0 && m.ctx != nil {
		if err := m.ctx.Err(); err != nil {
			return err
		}
	}
	if n := m.options.YieldEvery; n > 0 && m.steps%n == 0 {
		if !m.yield(InterruptYield, nil) {
			return errStopped
		}
	}
	return nil
}

func (m *Machine) primitive(cmd *bfcode.Command) error {
	tape := m.tape
	switch cmd.Op {

	case bfcode.OpMoveRight:
		tape.Cursor++
		if tape.Cursor == len(tape.Cells) {
			tape.grow()
			if logger := m.options.Logger; logger != nil {
				logger.DebugContext(m.ctx, "tape grown", "len", len(tape.Cells))
			}
		}

	case bfcode.OpMoveLeft:
		if tape.Cursor == 0 {
			return &PointerUnderflowError{
				Pos: cmd.Pos,
			}
		}
		tape.Cursor--

	case bfcode.OpIncrement:
		tape.Cells[tape.Cursor]++

	case bfcode.OpDecrement:
		tape.Cells[tape.Cursor]--

	case bfcode.OpOutput:
		if err := m.out.WriteByte(tape.Cells[tape.Cursor]); err != nil {
			return &IOError{Op: "write", Pos: cmd.Pos, Err: err}
		}
		if f, ok := m.out.(flusher); ok {
			if err := f.Flush(); err != nil {
				return &IOError{Op: "flush", Pos: cmd.Pos, Err: err}
			}
		}

	case bfcode.OpInput:
		b, err := m.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				switch m.options.EOF {
				case EOFZero:
					tape.Cells[tape.Cursor] = 0
					return nil
				case EOFKeep:
					return nil
				}
			}
			return &IOError{Op: "read", Pos: cmd.Pos, Err: err}
		}
		tape.Cells[tape.Cursor] = b

	}
	return nil
}
