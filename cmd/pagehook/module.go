package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pagehook/serves"
)

type Module struct {
	dscope.Module
	Serves serves.Module
}
