// Package payloads defines the handlers run on lifecycle events.
//
// Handlers are compiled into the binary and looked up by name. Text decoded
// from a cipher literal selects handlers and supplies their arguments; it is
// never evaluated as code.
package payloads

import (
	"context"
	"io"
	"log/slog"
)

type Handler interface {
	Run(ctx *Context) error
}

type HandlerFunc func(ctx *Context) error

var _ Handler = HandlerFunc(nil)

func (f HandlerFunc) Run(ctx *Context) error {
	return f(ctx)
}

// Context is the state of one handler invocation.
type Context struct {
	context.Context
	Output io.Writer
	Logger *slog.Logger
	Name   string
	Args   []string
	// Depth counts nested stages, the top level script is 0
	Depth int
}

func (c *Context) WithArgs(name string, args []string) *Context {
	ret := *c
	ret.Name = name
	ret.Args = args
	return &ret
}
