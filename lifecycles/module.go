package lifecycles

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pagehook/hooks"
	"github.com/reusee/pagehook/payloads"
	"github.com/reusee/pagehook/registries"
	"github.com/reusee/pagehook/sinks"
)

type Module struct {
	dscope.Module
	Sinks sinks.Module
	Hooks hooks.Module
}

func (Module) Registry() *registries.Registry[payloads.Handler] {
	return payloads.Registry()
}
