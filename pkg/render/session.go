package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Session ties together one render: its cancellation signal, its deadline
// timer and the stream the component writes to.
//
// The session context is canceled when the timer fires, when the consumer
// closes the stream, or when the parent context ends. Any of these moves a
// running session to StateFailed. The timer is stopped exactly once, when the
// session reaches a terminal state.
type Session struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	timer  *time.Timer
	stream *Stream
	logger *slog.Logger
	span   trace.Span

	timerOnce    sync.Once
	timerStopped atomic.Int32

	mu           sync.Mutex
	state        State
	status       int
	err          error
	shellReached bool

	shellReady chan struct{}
	allReady   chan struct{}
}

func newSession(parent context.Context, deadline time.Duration, status int, logger *slog.Logger, span trace.Span) *Session {
	ctx, cancel := context.WithCancelCause(parent)

	s := &Session{
		ctx:        ctx,
		cancel:     cancel,
		logger:     logger,
		span:       span,
		status:     status,
		shellReady: make(chan struct{}),
		allReady:   make(chan struct{}),
	}
	s.stream = newStream(func() { s.cancel(ErrClientClosed) })
	s.timer = time.AfterFunc(deadline, func() { s.cancel(ErrAborted) })
	context.AfterFunc(ctx, func() { s.fail(context.Cause(ctx)) })

	return s
}

// run renders c into the session stream and settles the session.
func (s *Session) run(ctx context.Context, c Component) {
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render: panic: %v", r)
		}
		s.finish(err)
	}()

	err = c.Render(ctx, &sessionWriter{s: s})
}

func (s *Session) markShellReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shellLocked()
}

func (s *Session) shellLocked() {
	if s.state != StatePending || !s.transitionLocked(StateShellReady) {
		return
	}
	s.shellReached = true
	close(s.shellReady)
}

func (s *Session) transitionLocked(to State) bool {
	if !s.state.canTransition(to) {
		return false
	}
	s.state = to
	return true
}

func (s *Session) finish(err error) {
	if err != nil {
		s.fail(err)
		return
	}

	s.mu.Lock()
	s.shellLocked()
	if !s.transitionLocked(StateDone) {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.complete(nil)
}

// fail moves the session to StateFailed. A failure after the shell was ready
// sets the status to 500 and is logged; an earlier one is left to the caller.
// A consumer that hangs up is not a render failure: the status is kept and
// the close is logged at debug level.
func (s *Session) fail(err error) {
	clientClosed := errors.Is(err, ErrClientClosed)

	s.mu.Lock()
	if !s.transitionLocked(StateFailed) {
		s.mu.Unlock()
		return
	}
	afterShell := s.shellReached
	s.err = err
	if afterShell && !clientClosed {
		s.status = http.StatusInternalServerError
	}
	s.mu.Unlock()

	switch {
	case clientClosed:
		s.logger.DebugContext(s.ctx, "render stream closed by client",
			slog.Int64("bytes", s.stream.Written()),
		)
	case afterShell:
		s.logger.ErrorContext(s.ctx, "render stream failed",
			slog.Any("error", err),
			slog.Int64("bytes", s.stream.Written()),
		)
	}

	s.complete(err)
}

// complete releases session resources. It runs once, right after the
// transition into a terminal state.
func (s *Session) complete(err error) {
	s.clearTimer()
	s.stream.end()
	close(s.allReady)

	if s.span != nil {
		s.span.SetAttributes(attribute.Int64("render.bytes", s.stream.Written()))
		if err != nil && !errors.Is(err, ErrClientClosed) {
			s.span.RecordError(err)
			s.span.SetStatus(codes.Error, err.Error())
		}
		s.span.End()
	}

	s.cancel(errSessionClosed)
}

func (s *Session) clearTimer() {
	s.timerOnce.Do(func() {
		s.timer.Stop()
		s.timerStopped.Add(1)
	})
}

// wait blocks until the session may be handed to the caller: all-ready for
// crawlers, shell-ready (or completion) for browsers.
func (s *Session) wait(crawler bool) {
	if crawler {
		<-s.allReady
		return
	}
	select {
	case <-s.shellReady:
	case <-s.allReady:
	}
}

// handoff returns the status at the moment the stream is given to the caller.
// A failure before the shell is reported as an error instead.
func (s *Session) handoff() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateFailed && !s.shellReached {
		return 0, fmt.Errorf("%w: %w", ErrShell, s.err)
	}
	if s.state == StateShellReady {
		s.transitionLocked(StateStreaming)
	}
	return s.status, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Status returns the current response status. It may change to 500 after the
// stream was handed off; the Result keeps the value seen at handoff.
func (s *Session) Status() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err returns the error that failed the session, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ShellReady is closed once the shell has been produced.
func (s *Session) ShellReady() <-chan struct{} {
	return s.shellReady
}

// Done is closed when the session reaches a terminal state.
func (s *Session) Done() <-chan struct{} {
	return s.allReady
}

// sessionWriter is the writer handed to components. Flush marks the shell
// boundary. It has the http.Flusher signature because templ's runtime buffer
// forwards flushes only to an http.Flusher.
type sessionWriter struct {
	s *Session
}

func (w *sessionWriter) Write(p []byte) (int, error) {
	if w.s.ctx.Err() != nil {
		return 0, context.Cause(w.s.ctx)
	}
	return w.s.stream.write(p)
}

// Flush is a no-op once the session is canceled; the next Write reports why.
func (w *sessionWriter) Flush() {
	if w.s.ctx.Err() != nil {
		return
	}
	w.s.markShellReady()
}
