package cmds

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown command")

type Executor struct {
	commands map[string]*Command
	output   io.Writer
}

func NewExecutor() *Executor {
	e := &Executor{
		commands: make(map[string]*Command),
		output:   os.Stderr,
	}
	e.Define("-h", Func(func() {
		e.PrintUsage()
		os.Exit(0)
	}).Desc("print this usage").Alias("help", "-help", "--help"))
	return e
}

// Define panics if name or an alias is taken.
func (e *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := e.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		e.commands[n] = command
	}
}

// Execute runs the commands named in args from left to right.
// "-name=value" is the same as "-name value".
func (e *Executor) Execute(args []string) error {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := e.commands[name]
		if !ok {
			key, value, found := strings.Cut(name, "=")
			if command, ok = e.commands[key]; !found || !ok {
				return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
			}
			name = key
			args = append([]string{value}, args...)
		}

		var err error
		args, err = command.call(args)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (e *Executor) SetOutput(w io.Writer) {
	e.output = w
}

// PrintUsage lists commands sorted by name, aliases folded into their command.
func (e *Executor) PrintUsage() {
	for _, name := range slices.Sorted(maps.Keys(e.commands)) {
		command := e.commands[name]
		if slices.Contains(command.Aliases, name) {
			continue
		}
		line := name
		if args := command.placeholders(); args != "" {
			line += " " + args
		}
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(e.output, line)
	}
}
