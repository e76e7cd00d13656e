package bfvm

import (
	"fmt"
	"io"

	"github.com/reusee/bf/logs"
)

type EOFPolicy uint8

const (
	// EOFFail fails the run when input is exhausted.
	EOFFail EOFPolicy = iota
	// EOFZero stores 0 in the current cell.
	EOFZero
	// EOFKeep leaves the current cell unchanged.
	EOFKeep
)

func (e EOFPolicy) String() string {
	switch e {
	case EOFFail:
		return "fail"
	case EOFZero:
		return "zero"
	case EOFKeep:
		return "keep"
	}
	return fmt.Sprintf("EOFPolicy(%d)", uint8(e))
}

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	switch str {
	case "", "fail":
		return EOFFail, nil
	case "zero", "0":
		return EOFZero, nil
	case "keep", "unchanged":
		return EOFKeep, nil
	}
	return 0, fmt.Errorf("unknown eof policy: %q", str)
}

type Options struct {
	// TapeSize is the initial cell count, DefaultTapeSize if not positive.
	TapeSize int
	// MaxSteps bounds executed steps; zero means unbounded.
	MaxSteps int
	EOF      EOFPolicy
	// YieldEvery makes Run yield InterruptYield every n steps; zero disables it.
	YieldEvery int

	In     io.ByteReader // if nil, input is always exhausted
	Out    io.ByteWriter // if nil, output is discarded
	Logger logs.Logger
}
