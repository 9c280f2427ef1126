package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

type ModuleForTest struct {
	dscope.Module
	t    *testing.T
	mode Mode
}

// ForTest provides t and the development mode.
func ForTest(t *testing.T) ModuleForTest {
	return ForTestMode(t, ModeDevelopment)
}

func ForTestMode(t *testing.T, mode Mode) ModuleForTest {
	return ModuleForTest{
		t:    t,
		mode: mode,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return m.mode
}
