package outputs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestNested(t *testing.T) {
	base := new(bytes.Buffer)
	s := NewStack(base)
	fmt.Fprint(s, "0")
	s.Begin()
	fmt.Fprint(s, "1")
	s.Begin()
	fmt.Fprint(s, "2")
	inner, err := s.End()
	if err != nil {
		t.Fatal(err)
	}
	outer, err := s.End()
	if err != nil {
		t.Fatal(err)
	}
	if inner != "2" || outer != "1" || base.String() != "0" {
		t.Fatalf("got %q %q %q", inner, outer, base.String())
	}
	if _, err := s.End(); !errors.Is(err, ErrNotCapturing) {
		t.Fatalf("got %v", err)
	}
}

func TestCapture(t *testing.T) {
	s := NewStack(nil)
	out, err := s.Capture(func(w io.Writer) error {
		_, err := io.WriteString(w, "X")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != "X" {
		t.Fatalf("got %q", out)
	}
	if s.Depth() != 0 {
		t.Fatalf("got %d", s.Depth())
	}
}

func TestCaptureError(t *testing.T) {
	s := NewStack(nil)
	boom := errors.New("boom")
	out, err := s.Capture(func(w io.Writer) error {
		io.WriteString(w, "partial")
		s.Begin()
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if out != "partial" {
		t.Fatalf("got %q", out)
	}
	if s.Depth() != 0 {
		t.Fatalf("got %d", s.Depth())
	}
}

func TestCapturePanic(t *testing.T) {
	base := new(bytes.Buffer)
	s := NewStack(base)
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		s.Capture(func(w io.Writer) error {
			io.WriteString(w, "lost")
			panic("boom")
		})
	}()
	if s.Depth() != 0 {
		t.Fatalf("got %d", s.Depth())
	}
	fmt.Fprint(s, "after")
	if base.String() != "after" {
		t.Fatalf("got %q", base.String())
	}
}

func TestFromContext(t *testing.T) {
	s := NewStack(nil)
	ctx := WithStack(t.Context(), s)
	if FromContext(ctx) != s {
		t.Fatal("should return stored stack")
	}
	if FromContext(t.Context()) == nil {
		t.Fatal("should return new stack")
	}
}
