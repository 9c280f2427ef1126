package cmds

import (
	"context"
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args with the global executor and exits on error.
func Execute(args []string) {
	ExecuteContext(context.Background(), args)
}

func ExecuteContext(ctx context.Context, args []string) {
	if err := GlobalExecutor.ExecuteContext(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
