package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/suites"
)

// Check runs the suite file at path and prints a report.
type Check func(ctx context.Context, path string) error

func (Module) Check(
	run suites.Run,
	logger logs.Logger,
) Check {
	return func(ctx context.Context, path string) error {
		cases, err := suites.Load(path)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "suite", "path", path, "cases", len(cases))
		report := run(ctx, cases)
		fmt.Print(report)
		if n := report.Failed(); n > 0 {
			return fmt.Errorf("%s: %d of %d cases failed", path, n, len(cases))
		}
		return nil
	}
}

// Inspect opens a tap over a snapshot written by -dump.
type Inspect func(ctx context.Context, path string) error

func (Module) Inspect(
	newMachine bfvm.NewMachine,
	tap debugs.Tap,
) Inspect {
	return func(ctx context.Context, path string) error {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		m := newMachine(nil, nil)
		if err := m.Restore(f); err != nil {
			return fmt.Errorf("restore %s: %w", path, err)
		}
		tap(ctx, path, debugs.MachineGlobals(m))
		return nil
	}
}
