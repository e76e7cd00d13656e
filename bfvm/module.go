package bfvm

import (
	"io"

	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type NewMachine func(in io.ByteReader, out io.ByteWriter) *Machine

func (Module) NewMachine(
	options Options,
	logger logs.Logger,
) NewMachine {
	return func(in io.ByteReader, out io.ByteWriter) *Machine {
		opts := options
		opts.In = in
		opts.Out = out
		if opts.Logger == nil {
			opts.Logger = logger
		}
		return New(opts)
	}
}
