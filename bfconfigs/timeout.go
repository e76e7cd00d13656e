package bfconfigs

import (
	"cmp"
	"fmt"
	"time"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

// Timeout bounds the wall clock time of a run; zero is unbounded.
type Timeout time.Duration

var _ configs.Configurable = Timeout(0)

func (t Timeout) ConfigExpr() string {
	return "Timeout"
}

func (t Timeout) String() string {
	return time.Duration(t).String()
}

var timeoutFlag = cmds.Var[string]("-timeout", "abort runs after this duration")

func (Module) Timeout(
	loader configs.Loader,
) Timeout {
	timeout, err := parseTimeout(loader)
	if err != nil {
		panic(err)
	}
	return timeout
}

func parseTimeout(loader configs.Loader) (Timeout, error) {
	str := cmp.Or(
		*timeoutFlag,
		configs.First[string](loader, "timeout"),
	)
	if str == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		return 0, fmt.Errorf("bad timeout %q: %w", str, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("bad timeout %q: negative", str)
	}
	return Timeout(d), nil
}
