package modes

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pagehook/cmds"
)

var devFlag = cmds.Switch("-dev")

// ModuleForCommand is the mode of command line runs: production unless -dev
// is given.
type ModuleForCommand struct {
	dscope.Module
}

func ForCommand() ModuleForCommand {
	return ModuleForCommand{}
}

func (ModuleForCommand) T() *testing.T {
	return nil
}

func (ModuleForCommand) Mode() Mode {
	if *devFlag {
		return ModeDevelopment
	}
	return ModeProduction
}
