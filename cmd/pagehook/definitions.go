package main

import (
	"io"
	"runtime/debug"

	"github.com/reusee/pagehook/payloads"
	"github.com/reusee/pagehook/sinks"
)

// definitions are the script handlers of this binary on top of the builtins.
func definitions() sinks.Definitions {
	return sinks.Definitions{
		"version": payloads.HandlerFunc(func(ctx *payloads.Context) error {
			_, err := io.WriteString(ctx.Output, version())
			return err
		}),
	}
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "(devel)"
	}
	return info.Main.Version
}
