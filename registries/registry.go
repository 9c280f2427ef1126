// Package registries provides named values that are built at most once.
//
// An entry is created by the first EnsureDefined call for its name and lives
// as long as the registry. Builders for different names run concurrently and
// may themselves call EnsureDefined; callers racing on the same name wait
// for the first build and share its result.
package registries

import (
	"errors"
	"slices"
	"sync"
)

var errPanicked = errors.New("builder panicked")

type Registry[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
}

type entry[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func New[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]*entry[T]),
	}
}

// EnsureDefined returns the value for name, calling builder if there is none.
// A failed build is not stored, the next call builds again. A builder must
// not call EnsureDefined for its own name.
func (r *Registry[T]) EnsureDefined(name string, builder func() (T, error)) (T, error) {
	r.mu.Lock()
	e, ok := r.entries[name]
	if !ok {
		e = &entry[T]{
			done: make(chan struct{}),
		}
		r.entries[name] = e
	}
	r.mu.Unlock()

	if ok {
		<-e.done
		return e.value, e.err
	}

	defer close(e.done)
	e.err = errPanicked
	defer func() {
		if e.err != nil {
			r.mu.Lock()
			if r.entries[name] == e {
				delete(r.entries, name)
			}
			r.mu.Unlock()
		}
	}()
	e.value, e.err = builder()
	return e.value, e.err
}

func (r *Registry[T]) Lookup(name string) (ret T, ok bool) {
	r.mu.Lock()
	e, ok := r.entries[name]
	r.mu.Unlock()
	if !ok {
		return ret, false
	}
	<-e.done
	if e.err != nil {
		return ret, false
	}
	return e.value, true
}

// Names includes entries whose build is in progress.
func (r *Registry[T]) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
