package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/sources"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	fileFlag  = cmds.Var[string]("-file", "program source file")
	urlFlag   = cmds.Var[string]("-url", "program source URL")
	exprFlag  = cmds.Var[string]("-e", "program source text")
	debugFlag = cmds.Switch("-debug", "open a starlark tap on failure")
	dumpFlag  = cmds.Var[string]("-dump", "write a tape snapshot to this file after the run")
	watchFlag = cmds.Switch("-watch", "re-run when -file changes")
)

var (
	replMode    = cmds.Switch("repl", "read and run programs line by line")
	checkPath   = cmds.Var[string]("check", "run a CUE or YAML suite file")
	inspectPath = cmds.Var[string]("inspect", "open a starlark tap over a snapshot file")
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(loader configs.Loader) {
		err = bfconfigs.Validate(loader)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(2)
	}

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
	) {
		ctx, _ = newSpan(ctx, "")
		switch {
		case *replMode:
			scope.Call(func(repl REPL) {
				err = repl(ctx)
			})
		case *checkPath != "":
			scope.Call(func(check Check) {
				err = check(ctx, *checkPath)
			})
		case *inspectPath != "":
			scope.Call(func(inspect Inspect) {
				err = inspect(ctx, *inspectPath)
			})
		case *fileFlag == "" && *urlFlag == "" && *exprFlag == "" &&
			term.IsTerminal(int(os.Stdin.Fd())):
			// nothing to run and nothing piped in
			scope.Call(func(repl REPL) {
				err = repl(ctx)
			})
		default:
			scope.Call(func(load sources.Load, run RunSource) {
				err = runMain(ctx, load, run)
			})
		}
		if err != nil {
			err = logs.WrapSpan(ctx, err)
			logger.ErrorContext(ctx, "failed", "error", err)
		}
	})

	if err != nil {
		cancel()
		os.Exit(1)
	}
}

var errNoWatchFile = errors.New("-watch needs -file")

func runMain(ctx context.Context, load sources.Load, run RunSource) error {
	if *watchFlag {
		if *fileFlag == "" {
			return errNoWatchFile
		}
		return watch(ctx, *fileFlag, func() error {
			source, err := load(ctx, *fileFlag)
			if err != nil {
				return err
			}
			return run(ctx, source)
		})
	}

	var source *bfcode.Source
	switch {
	case *exprFlag != "":
		source = bfcode.NewSource("<expr>", *exprFlag)
	default:
		ref := "-"
		if *urlFlag != "" {
			ref = *urlFlag
		} else if *fileFlag != "" {
			ref = *fileFlag
		}
		var err error
		source, err = load(ctx, ref)
		if err != nil {
			return err
		}
	}
	return run(ctx, source)
}
