package main

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/sources"
	"github.com/reusee/bf/suites"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	VM      bfvm.Module
	Sources sources.Module
	Debugs  debugs.Module
	Suites  suites.Module
}
