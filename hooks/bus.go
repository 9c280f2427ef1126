// Package hooks dispatches named lifecycle events to prioritized handlers.
package hooks

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Handler receives an optional text argument followed by extra arguments.
type Handler func(ctx context.Context, args ...string) (string, error)

type Bus struct {
	logger *slog.Logger
	mu     sync.RWMutex
	events map[string][]*entry
	serial int
}

type entry struct {
	name     string
	priority int
	serial   int
	handler  Handler
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		logger: logger,
		events: make(map[string][]*entry),
	}
}

// Add registers handler on event. Lower priorities run first; equal
// priorities run in registration order.
func (b *Bus) Add(event string, priority int, name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.serial++
	entries := append(b.events[event], &entry{
		name:     name,
		priority: priority,
		serial:   b.serial,
		handler:  handler,
	})
	slices.SortStableFunc(entries, func(x, y *entry) int {
		if x.priority != y.priority {
			return x.priority - y.priority
		}
		return x.serial - y.serial
	})
	b.events[event] = entries
}

// Remove unregisters every handler called name on event.
func (b *Bus) Remove(event string, name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := b.events[event]
	n := len(entries)
	entries = slices.DeleteFunc(entries, func(e *entry) bool {
		return e.name == name
	})
	if len(entries) == 0 {
		delete(b.events, event)
	} else {
		b.events[event] = entries
	}
	return len(entries) != n
}

// Apply runs the handlers of event. With a text argument, each handler's
// result is the next handler's text and the last result is returned.
// Without one, the results are concatenated. The first error stops the chain.
func (b *Bus) Apply(ctx context.Context, event string, args ...string) (string, error) {
	b.mu.RLock()
	entries := slices.Clone(b.events[event])
	b.mu.RUnlock()

	b.logger.DebugContext(ctx, "apply event",
		"event", event,
		"handlers", len(entries),
	)

	if len(args) == 0 {
		var out strings.Builder
		for _, e := range entries {
			result, err := e.handler(ctx)
			if err != nil {
				return out.String(), fmt.Errorf("event %s: handler %s: %w", event, e.name, err)
			}
			out.WriteString(result)
		}
		return out.String(), nil
	}

	text := args[0]
	rest := args[1:]
	for _, e := range entries {
		result, err := e.handler(ctx, append([]string{text}, rest...)...)
		if err != nil {
			return text, fmt.Errorf("event %s: handler %s: %w", event, e.name, err)
		}
		text = result
	}
	return text, nil
}

func (b *Bus) Events() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	events := make([]string, 0, len(b.events))
	for event := range b.events {
		events = append(events, event)
	}
	slices.Sort(events)
	return events
}

// Handlers returns handler names of event in run order.
func (b *Bus) Handlers(event string) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var names []string
	for _, e := range b.events[event] {
		names = append(names, e.name)
	}
	return names
}
