package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if tt != t {
			t.Fatal("should provide t")
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
	})

	dscope.New(ForTestMode(t, ModeProduction)).Call(func(
		mode Mode,
	) {
		if mode != ModeProduction || mode.String() != "production" {
			t.Fatalf("got %v", mode)
		}
	})
}
