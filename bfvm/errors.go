package bfvm

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bf/bfcode"
)

var (
	ErrPointerUnderflow = errors.New("pointer underflow")
	ErrIO               = errors.New("io error")
	ErrEndOfStream      = errors.New("end of stream")
	ErrStepLimit        = errors.New("step limit exceeded")
)

type PointerUnderflowError struct {
	Pos bfcode.Pos
}

func (p *PointerUnderflowError) Error() string {
	return fmt.Sprintf("%s: cursor moved left of cell 0 at %s", ErrPointerUnderflow, p.Pos)
}

func (p *PointerUnderflowError) Is(target error) bool {
	return target == ErrPointerUnderflow
}

// IOError wraps a failure of the byte source or sink.
type IOError struct {
	Op  string
	Pos bfcode.Pos
	Err error
}

func (e *IOError) Error() string {
	if e.Is(ErrEndOfStream) {
		return fmt.Sprintf("%s: %s at %s", e.Op, ErrEndOfStream, e.Pos)
	}
	return fmt.Sprintf("%s: %s at %s: %v", e.Op, ErrIO, e.Pos, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	switch target {
	case ErrIO:
		return true
	case ErrEndOfStream:
		return errors.Is(e.Err, io.EOF)
	}
	return false
}

type StepLimitError struct {
	Limit int
}

func (s *StepLimitError) Error() string {
	return fmt.Sprintf("%s: %d", ErrStepLimit, s.Limit)
}

func (s *StepLimitError) Is(target error) bool {
	return target == ErrStepLimit
}
