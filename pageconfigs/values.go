package pageconfigs

import (
	"time"

	"github.com/reusee/pagehook/cmds"
	"github.com/reusee/pagehook/configs"
	"github.com/reusee/pagehook/vars"
)

// AlphabetOrder is the 95-symbol table ordering. Empty means ascii order.
type AlphabetOrder string

var _ configs.Configurable = AlphabetOrder("")

func (AlphabetOrder) ConfigExpr() string {
	return "alphabet"
}

func (Module) AlphabetOrder(
	loader configs.Loader,
) AlphabetOrder {
	return configs.Value[AlphabetOrder](loader)
}

var (
	DefaultEvents   = []string{"get_sidebar", "get_footer"}
	DefaultPriority = 1
)

// CallSite binds one cipher literal and key to lifecycle events.
type CallSite struct {
	Name     string   `json:"name"`
	Events   []string `json:"events,omitempty"`
	Priority *int     `json:"priority,omitempty"`
	Cipher   string   `json:"cipher"`
	Key      int      `json:"key"`
}

func (c CallSite) EventNames() []string {
	if len(c.Events) == 0 {
		return DefaultEvents
	}
	return c.Events
}

func (c CallSite) PriorityValue() int {
	if c.Priority == nil {
		return DefaultPriority
	}
	return *c.Priority
}

type CallSites []CallSite

var _ configs.Configurable = CallSites(nil)

func (CallSites) ConfigExpr() string {
	return "call_sites"
}

// CallSites collects call sites from every config file, earlier files first.
func (Module) CallSites(
	loader configs.Loader,
) (ret CallSites) {
	for sites := range configs.All[CallSites](loader, CallSites(nil).ConfigExpr()) {
		ret = append(ret, sites...)
	}
	return
}

type Timeout time.Duration

var timeoutFlag = cmds.Var[int]("-timeout")

func (Module) Timeout(
	loader configs.Loader,
) Timeout {
	ms := vars.FirstNonZero(
		*timeoutFlag,
		configs.First[int](loader, "timeout_ms"),
		1000,
	)
	return Timeout(time.Duration(ms) * time.Millisecond)
}

// MaxDepth bounds nested stage unpacking.
type MaxDepth int

var maxDepthFlag = cmds.Var[int]("-max-depth")

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return MaxDepth(vars.FirstNonZero(
		*maxDepthFlag,
		configs.First[int](loader, "max_depth"),
		4,
	))
}

type Listen string

var listenFlag = cmds.Var[string]("-listen")

func (Module) Listen(
	loader configs.Loader,
) Listen {
	return Listen(vars.FirstNonZero(
		*listenFlag,
		configs.First[string](loader, "listen"),
		"127.0.0.1:8080",
	))
}

// MaxConns caps open connections of the http surface.
type MaxConns int

var maxConnsFlag = cmds.Var[int]("-max-conns")

func (Module) MaxConns(
	loader configs.Loader,
) MaxConns {
	return MaxConns(vars.FirstNonZero(
		*maxConnsFlag,
		configs.First[int](loader, "max_conns"),
		256,
	))
}

// MaxRenders caps concurrent renders.
type MaxRenders int

var maxRendersFlag = cmds.Var[int]("-max-renders")

func (Module) MaxRenders(
	loader configs.Loader,
) MaxRenders {
	return MaxRenders(vars.FirstNonZero(
		*maxRendersFlag,
		configs.First[int](loader, "max_renders"),
		32,
	))
}
