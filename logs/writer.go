package logs

import (
	"io"
	"os"

	"github.com/reusee/pagehook/cmds"
)

type Writer io.Writer

var logFile = cmds.Var[string]("-log-file")

// Writer is stderr, or the file named by -log-file opened for appending.
func (Module) Writer() Writer {
	if *logFile == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(err)
	}
	return f
}
