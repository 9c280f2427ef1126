// Package sinks runs decoded directive scripts.
//
// A script is a list of statements separated by newlines or semicolons,
// each naming a handler followed by its arguments. Fields are separated by
// blanks; a field may be a Go quoted string. Blank lines and lines starting
// with # are skipped. Only handlers defined on the Dispatcher can be reached.
package sinks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/reusee/pagehook/ciphers"
	"github.com/reusee/pagehook/payloads"
	"github.com/reusee/pagehook/procs"
)

var (
	ErrUnknownHandler = errors.New("unknown handler")
	ErrSyntax         = errors.New("syntax error")
	ErrDepthExceeded  = errors.New("stage depth exceeded")
)

type Sink interface {
	Execute(ctx context.Context, script string, out io.Writer) error
}

// Expander is a handler that produces a nested script instead of output.
// The nested script runs in place of the expanding line, one level deeper.
type Expander interface {
	payloads.Handler
	Expand(ctx *payloads.Context) (string, error)
}

type Proc = procs.Proc[*payloads.Context]

type Dispatcher struct {
	handlers map[string]payloads.Handler
	decode   ciphers.Decoder
	logger   *slog.Logger
	timeout  time.Duration
	maxDepth int
}

var _ Sink = new(Dispatcher)

func NewDispatcher(
	decode ciphers.Decoder,
	logger *slog.Logger,
	timeout time.Duration,
	maxDepth int,
) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]payloads.Handler),
		decode:   decode,
		logger:   logger,
		timeout:  timeout,
		maxDepth: maxDepth,
	}
	for name, handler := range Builtins(decode) {
		d.Define(name, handler)
	}
	return d
}

func (d *Dispatcher) Define(name string, handler payloads.Handler) {
	if name == "" || strings.ContainsAny(name, " \t\";#") {
		panic(fmt.Errorf("bad handler name: %q", name))
	}
	if _, ok := d.handlers[name]; ok {
		panic(fmt.Errorf("duplicated handler %s", name))
	}
	d.handlers[name] = handler
}

func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Check parses script without running it.
func (d *Dispatcher) Check(script string) error {
	_, err := d.compile(script, 0)
	return err
}

func (d *Dispatcher) Execute(ctx context.Context, script string, out io.Writer) error {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	program, err := d.compile(script, 0)
	if err != nil {
		return err
	}

	run := &payloads.Context{
		Context: ctx,
		Output:  out,
		Logger:  d.logger,
	}
	steps, err := procs.Drain(run, Proc(program), nil)
	d.logger.DebugContext(ctx, "script executed",
		"steps", steps,
		"error", err,
	)
	return err
}

type line struct {
	number int
	name   string
	args   []string
}

func parse(script string, depth int) (ret []line, err error) {
	for i, text := range strings.Split(script, "\n") {
		text = strings.TrimSpace(text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		statements, err := splitStatements(text)
		if err != nil {
			return nil, &payloads.ExecutionError{
				Depth: depth,
				Line:  i + 1,
				Err:   err,
			}
		}
		for _, fields := range statements {
			ret = append(ret, line{
				number: i + 1,
				name:   fields[0],
				args:   fields[1:],
			})
		}
	}
	return
}

// splitStatements splits text into fields, starting a new statement at each
// unquoted semicolon. Empty statements are dropped.
func splitStatements(text string) (statements [][]string, err error) {
	var fields []string
	end := func() {
		if len(fields) > 0 {
			statements = append(statements, fields)
			fields = nil
		}
	}

	for i := 0; i < len(text); {
		switch c := text[i]; {

		case c == ' ' || c == '\t':
			i++

		case c == ';':
			end()
			i++

		case c == '"':
			j := i + 1
			for ; j < len(text); j++ {
				if text[j] == '\\' {
					j++
					continue
				}
				if text[j] == '"' {
					break
				}
			}
			if j >= len(text) {
				return nil, fmt.Errorf("%w: unterminated quote", ErrSyntax)
			}
			field, err := strconv.Unquote(text[i : j+1])
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
			}
			fields = append(fields, field)
			i = j + 1

		default:
			j := i
			for j < len(text) && !strings.ContainsRune(" \t;\"", rune(text[j])) {
				j++
			}
			fields = append(fields, text[i:j])
			i = j

		}
	}
	end()

	return
}

func (d *Dispatcher) compile(script string, depth int) (procs.Procs[*payloads.Context], error) {
	lines, err := parse(script, depth)
	if err != nil {
		return nil, err
	}
	program := make(procs.Procs[*payloads.Context], 0, len(lines))
	for _, l := range lines {
		handler, ok := d.handlers[l.name]
		if !ok {
			return nil, &payloads.ExecutionError{
				Depth: depth,
				Line:  l.number,
				Name:  l.name,
				Err:   ErrUnknownHandler,
			}
		}
		program = append(program, d.step(depth, l, handler))
	}
	return program, nil
}

func (d *Dispatcher) step(depth int, l line, handler payloads.Handler) Proc {
	return procs.Func[*payloads.Context](func(run *payloads.Context) (Proc, error) {
		fail := func(err error) (Proc, error) {
			return nil, &payloads.ExecutionError{
				Depth: depth,
				Line:  l.number,
				Name:  l.name,
				Err:   err,
			}
		}

		if err := run.Err(); err != nil {
			return fail(err)
		}

		c := run.WithArgs(l.name, l.args)
		c.Depth = depth

		if expander, ok := handler.(Expander); ok {
			if depth+1 > d.maxDepth {
				return fail(fmt.Errorf("%w: %d", ErrDepthExceeded, d.maxDepth))
			}
			script, err := expander.Expand(c)
			if err != nil {
				return fail(err)
			}
			nested, err := d.compile(script, depth+1)
			if err != nil {
				return nil, err
			}
			return nested, nil
		}

		if err := handler.Run(c); err != nil {
			return fail(err)
		}
		return nil, nil
	})
}
