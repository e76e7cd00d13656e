package bfconfigs

import (
	"cmp"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

// MaxSteps bounds a single run; zero is unbounded.
type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (m MaxSteps) ConfigExpr() string {
	return "MaxSteps"
}

var maxStepsFlag = cmds.Var[int]("-max-steps", "abort after this many steps, 0 for no limit")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(cmp.Or(
		max(*maxStepsFlag, 0),
		configs.First[int](loader, "max_steps"),
	))
}

// YieldEvery is the step interval of progress interrupts; zero disables them.
type YieldEvery int

var _ configs.Configurable = YieldEvery(0)

func (y YieldEvery) ConfigExpr() string {
	return "YieldEvery"
}

var yieldEveryFlag = cmds.Var[int]("-yield-every", "log progress every this many steps")

func (Module) YieldEvery(
	loader configs.Loader,
) YieldEvery {
	return YieldEvery(cmp.Or(
		max(*yieldEveryFlag, 0),
		configs.First[int](loader, "yield_every"),
	))
}
