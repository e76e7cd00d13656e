package bfconfigs

import (
	"cmp"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

type EOFPolicy bfvm.EOFPolicy

var _ configs.Configurable = EOFPolicy(0)

func (e EOFPolicy) ConfigExpr() string {
	return "EOFPolicy"
}

func (e EOFPolicy) String() string {
	return bfvm.EOFPolicy(e).String()
}

var eofFlag = cmds.Var[string]("-eof", "input policy at end of stream: fail, zero or keep")

func (Module) EOFPolicy(
	loader configs.Loader,
) EOFPolicy {
	policy, err := parseEOF(loader)
	if err != nil {
		panic(err)
	}
	return policy
}

func parseEOF(loader configs.Loader) (EOFPolicy, error) {
	policy, err := bfvm.ParseEOFPolicy(cmp.Or(
		*eofFlag,
		configs.First[string](loader, "eof"),
	))
	return EOFPolicy(policy), err
}
