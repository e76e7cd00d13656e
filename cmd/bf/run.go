package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
)

// RunSource parses and executes source over stdin and stdout.
type RunSource func(ctx context.Context, source *bfcode.Source) error

func (Module) RunSource(
	newMachine bfvm.NewMachine,
	timeout bfconfigs.Timeout,
	tap debugs.Tap,
	logger logs.Logger,
) RunSource {
	return func(ctx context.Context, source *bfcode.Source) (err error) {
		program, err := bfcode.ParseSource(source)
		if err != nil {
			return err
		}

		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout))
			defer cancel()
		}

		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()
		m := newMachine(bfvm.Reader(os.Stdin), out)

		defer func() {
			if *dumpFlag == "" {
				return
			}
			if e := dump(m, *dumpFlag); e != nil && err == nil {
				err = e
			}
		}()

		start := time.Now()
		for interrupt, e := range m.Run(ctx, program) {
			if e != nil {
				err = e
				break
			}
			if interrupt == bfvm.InterruptYield {
				logger.DebugContext(ctx, "progress",
					"steps", m.Steps(),
					"cursor", m.Tape().Cursor,
					"elapsed", time.Since(start),
				)
			}
		}

		if err != nil && *debugFlag {
			out.Flush()
			tap(ctx, fmt.Sprintf("%s: %v", source.Name, err), debugs.FailureGlobals(m, err))
		}
		return err
	}
}

func dump(m *bfvm.Machine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Snapshot(f); err != nil {
		f.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return f.Close()
}
