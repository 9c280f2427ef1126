// Package serves fires lifecycle events over http.
package serves

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/reusee/dscope"
	"github.com/reusee/pagehook/hooks"
	"github.com/reusee/pagehook/lifecycles"
	"github.com/reusee/pagehook/logs"
	"github.com/reusee/pagehook/modes"
	"github.com/reusee/pagehook/outputs"
	"github.com/reusee/pagehook/pageconfigs"
	"github.com/reusee/pagehook/syncs"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"
)

type Module struct {
	dscope.Module
	Lifecycles lifecycles.Module
}

type Handler http.Handler

func (Module) Handler(
	bus *hooks.Bus,
	install lifecycles.Install,
	sites pageconfigs.CallSites,
	logger logs.Logger,
	mode modes.Mode,
	maxRenders pageconfigs.MaxRenders,
) Handler {
	// callers validate sites first, a failure here is a programming error
	if err := install(bus, sites); err != nil {
		panic(err)
	}
	renders := syncs.NewSemaphore(int(maxRenders))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	// GET /fire/{event}?text=... applies event, text is optional
	mux.HandleFunc("GET /fire/{event}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := renders.AcquireContext(ctx); err != nil {
			http.Error(w, "canceled", http.StatusServiceUnavailable)
			return
		}
		defer renders.Release()

		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		event := r.PathValue("event")
		var args []string
		if query := r.URL.Query(); query.Has("text") {
			args = append(args, query.Get("text"))
		}

		page := new(bytes.Buffer)
		ctx = outputs.WithStack(ctx, outputs.NewStack(page))
		out, err := bus.Apply(ctx, event, args...)
		if err != nil {
			logger.ErrorContext(ctx, "fire event",
				"request", requestID,
				"event", event,
				"error", err,
			)
			if mode == modes.ModeDevelopment {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			} else {
				http.Error(w, "render failed", http.StatusInternalServerError)
			}
			return
		}
		page.WriteString(out)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write(page.Bytes())
	})

	return mux
}

type Serve func(ctx context.Context) error

func (Module) Serve(
	handler Handler,
	listen pageconfigs.Listen,
	maxConns pageconfigs.MaxConns,
	logger logs.Logger,
) Serve {
	return func(ctx context.Context) error {
		ln, err := net.Listen("tcp", string(listen))
		if err != nil {
			return err
		}
		return ServeListener(ctx, netutil.LimitListener(ln, int(maxConns)), handler, logger)
	}
}

// ServeListener serves until ctx is done, then shuts down gracefully.
func ServeListener(ctx context.Context, ln net.Listener, handler http.Handler, logger logs.Logger) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("serving", "addr", ln.Addr().String())
		if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down", "addr", ln.Addr().String())
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
