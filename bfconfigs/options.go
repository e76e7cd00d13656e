package bfconfigs

import (
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
)

func (Module) Options(
	tapeSize TapeSize,
	maxSteps MaxSteps,
	yieldEvery YieldEvery,
	eof EOFPolicy,
	timeout Timeout,
	logger logs.Logger,
) bfvm.Options {
	logger.Debug("machine options", configs.Attrs(
		tapeSize,
		maxSteps,
		yieldEvery,
		eof,
		timeout,
	)...)
	return bfvm.Options{
		TapeSize:   int(tapeSize),
		MaxSteps:   int(maxSteps),
		YieldEvery: int(yieldEvery),
		EOF:        bfvm.EOFPolicy(eof),
	}
}
