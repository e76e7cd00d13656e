package bfconfigs

import (
	"cmp"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

type TapeSize int

var _ configs.Configurable = TapeSize(0)

func (t TapeSize) ConfigExpr() string {
	return "TapeSize"
}

var tapeSizeFlag = cmds.Var[int]("-tape-size", "initial tape cells")

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(cmp.Or(
		max(*tapeSizeFlag, 0),
		configs.First[int](loader, "tape_size"),
		bfvm.DefaultTapeSize,
	))
}
