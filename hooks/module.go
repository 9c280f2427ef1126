package hooks

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pagehook/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

func (Module) Bus(
	logger logs.Logger,
) *Bus {
	return NewBus(logger)
}
