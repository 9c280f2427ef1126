// Package outputs provides nested output capture.
//
// Begin opens a capture region; everything written to Writer until the
// matching End is collected and returned by End instead of reaching the
// enclosing region. A Stack belongs to a single render and is not safe for
// concurrent use.
package outputs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

var ErrNotCapturing = errors.New("no capture region open")

type Stack struct {
	base    io.Writer
	buffers []*bytes.Buffer
}

func NewStack(base io.Writer) *Stack {
	if base == nil {
		base = io.Discard
	}
	return &Stack{
		base: base,
	}
}

func (s *Stack) Begin() {
	s.buffers = append(s.buffers, new(bytes.Buffer))
}

// End closes the innermost region and returns what it captured.
func (s *Stack) End() (string, error) {
	if len(s.buffers) == 0 {
		return "", ErrNotCapturing
	}
	buf := s.buffers[len(s.buffers)-1]
	s.buffers = s.buffers[:len(s.buffers)-1]
	return buf.String(), nil
}

// Writer returns the innermost open region, or the base writer.
func (s *Stack) Writer() io.Writer {
	if len(s.buffers) == 0 {
		return s.base
	}
	return s.buffers[len(s.buffers)-1]
}

func (s *Stack) Write(p []byte) (int, error) {
	return s.Writer().Write(p)
}

func (s *Stack) Depth() int {
	return len(s.buffers)
}

// Capture runs fn inside a new region. The region is closed on every path,
// including a panic in fn; output captured before an error is still returned.
func (s *Stack) Capture(fn func(w io.Writer) error) (captured string, err error) {
	depth := s.Depth()
	s.Begin()
	defer func() {
		// regions fn left open are discarded
		for s.Depth() > depth+1 {
			s.End()
		}
		out, endErr := s.End()
		captured = out
		if err == nil && endErr != nil {
			err = fmt.Errorf("end capture: %w", endErr)
		}
	}()
	err = fn(s.Writer())
	return
}

type stackKey struct{}

func WithStack(ctx context.Context, s *Stack) context.Context {
	return context.WithValue(ctx, stackKey{}, s)
}

// FromContext returns the stack of the current render, or a new one writing
// to io.Discard.
func FromContext(ctx context.Context) *Stack {
	if s, ok := ctx.Value(stackKey{}).(*Stack); ok {
		return s
	}
	return NewStack(nil)
}
