// Package lifecycles attaches configured call sites to lifecycle events.
//
// On every event a call site's handler is looked up in the payload
// registry, built on first use by decoding the call site's cipher literal,
// and run inside an output capture region of the current render. The
// captured output is appended to the event's text argument.
package lifecycles

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/pagehook/ciphers"
	"github.com/reusee/pagehook/hooks"
	"github.com/reusee/pagehook/logs"
	"github.com/reusee/pagehook/outputs"
	"github.com/reusee/pagehook/pageconfigs"
	"github.com/reusee/pagehook/payloads"
	"github.com/reusee/pagehook/registries"
	"github.com/reusee/pagehook/sinks"
)

// Script is a decoded script bound to the sink that runs it. Cipher and Key
// identify the call site it was decoded from.
type Script struct {
	Cipher string
	Key    int
	Source string
	Sink   sinks.Sink
}

var _ payloads.Handler = Script{}

func (s Script) Run(ctx *payloads.Context) error {
	return s.Sink.Execute(ctx, s.Source, ctx.Output)
}

// Install adds every call site to bus. Names identify payloads for the whole
// process, so sites sharing a name are rejected before anything is added.
type Install func(bus *hooks.Bus, sites pageconfigs.CallSites) error

func (Module) Install(
	newHandler NewHandler,
) Install {
	return func(bus *hooks.Bus, sites pageconfigs.CallSites) error {
		if err := checkNames(sites); err != nil {
			return err
		}
		for _, site := range sites {
			handler := newHandler(site)
			for _, event := range site.EventNames() {
				bus.Add(event, site.PriorityValue(), site.Name, handler)
			}
		}
		return nil
	}
}

var (
	ErrDuplicatedSite = errors.New("duplicated call site")
	// ErrPayloadConflict is returned when a name is already bound to a
	// payload decoded from another cipher or key.
	ErrPayloadConflict = errors.New("payload defined by another call site")
)

func checkNames(sites pageconfigs.CallSites) error {
	seen := make(map[string]bool)
	for _, site := range sites {
		if seen[site.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicatedSite, site.Name)
		}
		seen[site.Name] = true
	}
	return nil
}

type NewHandler func(site pageconfigs.CallSite) hooks.Handler

func (Module) NewHandler(
	registry *registries.Registry[payloads.Handler],
	decode ciphers.Decoder,
	sink sinks.Sink,
	logger logs.Logger,
	newSpan logs.NewSpan,
) NewHandler {
	return func(site pageconfigs.CallSite) hooks.Handler {
		return func(ctx context.Context, args ...string) (string, error) {
			ctx, _ = newSpan(ctx, "")

			handler, err := registry.EnsureDefined(site.Name, func() (payloads.Handler, error) {
				script, err := decode(site.Cipher, site.Key)
				if err != nil {
					return nil, err
				}
				logger.InfoContext(ctx, "payload defined",
					"site", site.Name,
					"key", site.Key,
				)
				return Script{
					Cipher: site.Cipher,
					Key:    site.Key,
					Source: script,
					Sink:   sink,
				}, nil
			})
			if err == nil {
				if script, ok := handler.(Script); ok &&
					(script.Cipher != site.Cipher || script.Key != site.Key) {
					err = fmt.Errorf("%w: %s", ErrPayloadConflict, site.Name)
				}
			}
			if err != nil {
				logger.ErrorContext(ctx, "define payload",
					"site", site.Name,
					"error", err,
				)
				return "", logs.WrapSpan(ctx, fmt.Errorf("define %s: %w", site.Name, err))
			}

			stack := outputs.FromContext(ctx)
			captured, err := stack.Capture(func(w io.Writer) error {
				return handler.Run(&payloads.Context{
					Context: ctx,
					Output:  w,
					Logger:  logger,
					Name:    site.Name,
				})
			})
			if err != nil {
				logger.ErrorContext(ctx, "run payload",
					"site", site.Name,
					"captured", len(captured),
					"error", err,
				)
				return "", logs.WrapSpan(ctx, fmt.Errorf("run %s: %w", site.Name, err))
			}

			if len(args) == 0 {
				return captured, nil
			}
			return args[0] + captured, nil
		}
	}
}

type Check func(sites pageconfigs.CallSites) error

// Check decodes and parses every call site without running anything.
func (Module) Check(
	decode ciphers.Decoder,
	dispatcher *sinks.Dispatcher,
) Check {
	return func(sites pageconfigs.CallSites) error {
		if err := checkNames(sites); err != nil {
			return err
		}
		for _, site := range sites {
			script, err := decode(site.Cipher, site.Key)
			if err != nil {
				return fmt.Errorf("call site %s: %w", site.Name, err)
			}
			if err := dispatcher.Check(script); err != nil {
				return fmt.Errorf("call site %s: %w", site.Name, err)
			}
		}
		return nil
	}
}
