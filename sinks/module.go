package sinks

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/pagehook/ciphers"
	"github.com/reusee/pagehook/logs"
	"github.com/reusee/pagehook/pageconfigs"
	"github.com/reusee/pagehook/payloads"
)

type Module struct {
	dscope.Module
	Ciphers ciphers.Module
	Configs pageconfigs.Module
}

// Definitions are handlers added by the binary on top of the builtins.
type Definitions map[string]payloads.Handler

func (Module) Definitions() Definitions {
	return nil
}

func (Module) Dispatcher(
	decode ciphers.Decoder,
	logger logs.Logger,
	timeout pageconfigs.Timeout,
	maxDepth pageconfigs.MaxDepth,
	defs Definitions,
) *Dispatcher {
	d := NewDispatcher(
		decode,
		logger,
		time.Duration(timeout),
		int(maxDepth),
	)
	for name, handler := range defs {
		d.Define(name, handler)
	}
	return d
}

func (Module) Sink(
	dispatcher *Dispatcher,
) Sink {
	return dispatcher
}
