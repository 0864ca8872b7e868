// Package mocks provides an Otel that opens no spans. Recorder keeps the
// errors traced through it so tests can assert on them.
package mocks

import (
	"agendador/infras/otel"
	"context"
	"sync"
)

type Recorder struct {
	mu     sync.Mutex
	errors []error
}

// NewOtel returns a tracer that discards everything.
func NewOtel() otel.Otel {
	return &Recorder{}
}

// NewRecorder returns a tracer that keeps every traced error.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, &scope{recorder: r}
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Errors returns the errors traced so far, oldest first.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

func (r *Recorder) record(err error) {
	if err == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors = append(r.errors, err)
}

type scope struct {
	recorder *Recorder
}

func (s *scope) End() {}

func (s *scope) TraceError(err error) {
	s.recorder.record(err)
}

func (s *scope) TraceIfError(errp *error) {
	if errp != nil {
		s.recorder.record(*errp)
	}
}

func (s *scope) AddEvent(_ string) {}

func (s *scope) SetAttribute(_ string, _ any) {}

func (s *scope) SetAttributes(_ map[string]any) {}
