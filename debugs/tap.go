package debugs

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/bf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL over globals, blocking until the session ends.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	writer logs.Writer,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		mappings := make(starlark.StringDict)
		for _, name := range slices.Sorted(maps.Keys(globals)) {
			value, err := toStarlarkValue(globals[name])
			if err != nil {
				logger.WarnContext(ctx, "tap global skipped", "name", name, "error", err)
				continue
			}
			mappings[name] = value
		}

		logger.InfoContext(ctx, "tap",
			"what", what,
			"globals", slices.Sorted(maps.Keys(mappings)),
		)
		defer logger.InfoContext(ctx, "tap end", "what", what)

		thread := &starlark.Thread{
			Name: "tap",
			// program output owns stdout
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(writer, msg)
			},
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
