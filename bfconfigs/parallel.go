package bfconfigs

import (
	"cmp"
	"runtime"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

// Parallel is how many suite cases run at once.
type Parallel int

var _ configs.Configurable = Parallel(0)

func (p Parallel) ConfigExpr() string {
	return "Parallel"
}

var parallelFlag = cmds.Var[int]("-parallel", "suite cases run at once")

func (Module) Parallel(
	loader configs.Loader,
) Parallel {
	return Parallel(cmp.Or(
		max(*parallelFlag, 0),
		configs.First[int](loader, "parallel"),
		runtime.NumCPU(),
	))
}
