package registries

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

func TestEnsureDefinedOnce(t *testing.T) {
	r := New[*int]()
	calls := 0
	builder := func() (*int, error) {
		calls++
		v := calls
		return &v, nil
	}

	first, err := r.EnsureDefined("foo", builder)
	if err != nil {
		t.Fatal(err)
	}
	for range 10 {
		v, err := r.EnsureDefined("foo", builder)
		if err != nil {
			t.Fatal(err)
		}
		if v != first {
			t.Fatal("entry changed")
		}
	}
	if calls != 1 {
		t.Fatalf("got %d", calls)
	}
	if *first != 1 {
		t.Fatalf("got %d", *first)
	}
}

func TestEnsureDefinedConcurrent(t *testing.T) {
	r := New[int]()
	var calls atomic.Int64
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]int, 64)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := r.EnsureDefined("foo", func() (int, error) {
				calls.Add(1)
				<-release
				return 42, nil
			})
			if err != nil {
				t.Error(err)
			}
			results[i] = v
		}()
	}
	close(release)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Fatalf("got %d", n)
	}
	for _, v := range results {
		if v != 42 {
			t.Fatalf("got %d", v)
		}
	}
}

func TestEnsureDefinedRetryAfterError(t *testing.T) {
	r := New[string]()
	boom := errors.New("boom")
	_, err := r.EnsureDefined("foo", func() (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if _, ok := r.Lookup("foo"); ok {
		t.Fatal("failed build should not be stored")
	}
	if r.Len() != 0 {
		t.Fatalf("got %d", r.Len())
	}

	v, err := r.EnsureDefined("foo", func() (string, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if v != "ok" {
		t.Fatalf("got %q", v)
	}
}

func TestEnsureDefinedPanic(t *testing.T) {
	r := New[int]()
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		r.EnsureDefined("foo", func() (int, error) {
			panic("boom")
		})
	}()
	v, err := r.EnsureDefined("foo", func() (int, error) {
		return 1, nil
	})
	if err != nil || v != 1 {
		t.Fatalf("got %v %v", v, err)
	}
}

func TestNestedDefinition(t *testing.T) {
	r := New[string]()
	v, err := r.EnsureDefined("outer", func() (string, error) {
		inner, err := r.EnsureDefined("inner", func() (string, error) {
			return "in", nil
		})
		if err != nil {
			return "", err
		}
		return inner + "+out", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if v != "in+out" {
		t.Fatalf("got %q", v)
	}
	if str := fmt.Sprintf("%v", r.Names()); str != "[inner outer]" {
		t.Fatalf("got %s", str)
	}
}
