package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
)

// REPL runs one program per line on a fresh machine.
// Text after the first "!" is fed to the program as input.
type REPL func(ctx context.Context) error

func (Module) REPL(
	newMachine bfvm.NewMachine,
	logger logs.Logger,
) REPL {
	return func(ctx context.Context) error {
		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".bf_history")
		}
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      "bf> ",
			HistoryFile: historyFile,
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		for n := 1; ctx.Err() == nil; n++ {
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			} else if err != nil {
				return err
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			output, err := evalLine(ctx, newMachine, fmt.Sprintf("<repl:%d>", n), line)
			os.Stdout.Write(output)
			if len(output) > 0 && output[len(output)-1] != '\n' {
				fmt.Println()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				logger.DebugContext(ctx, "repl line failed", "line", n, "error", err)
			}
		}
		return ctx.Err()
	}
}

func evalLine(ctx context.Context, newMachine bfvm.NewMachine, name string, line string) ([]byte, error) {
	src, input, _ := strings.Cut(line, "!")
	program, err := bfcode.ParseString(name, src)
	if err != nil {
		return nil, err
	}
	out := new(bytes.Buffer)
	m := newMachine(strings.NewReader(input), out)
	err = m.Execute(ctx, program)
	return out.Bytes(), err
}
