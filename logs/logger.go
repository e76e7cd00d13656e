package logs

import (
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/modes"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	cmds.Define("-log", cmds.Func(func(name string) error {
		return level.UnmarshalText([]byte(name))
	}).Desc("log level: debug, info, warn or error"))
}

// Writer receives terminal logs.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
	mode modes.Mode,
) Logger {
	text := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})
	handlers := []slog.Handler{text}

	if mode == modes.ModeProduction && underSystemd() {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			slog.New(text).Debug("journal unavailable", "error", err)
		} else {
			// journal replaces the terminal under a service manager
			handlers = []slog.Handler{journal}
		}
	}

	return slog.New(spanHandler{slogmulti.Fanout(handlers...)})
}

// toJournalKey maps attr keys to journal field names.
func toJournalKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return '_'
	}, key)
}

func underSystemd() bool {
	if os.Getenv("INVOCATION_ID") != "" {
		return true
	}
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	for line := range strings.SplitSeq(strings.TrimSpace(string(content)), "\n") {
		parts := strings.SplitN(line, ":", 3)
		if len(parts) == 3 && strings.HasSuffix(path.Dir(parts[2]), ".service") {
			return true
		}
	}
	return false
}
