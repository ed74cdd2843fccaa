package render

import "errors"

var (
	// ErrShell wraps any failure that happens before the shell is ready.
	ErrShell = errors.New("render: shell render failed")
	// ErrAborted is the cancellation cause when the render deadline elapses.
	ErrAborted = errors.New("render: aborted after timeout")
	// ErrClientClosed is the cancellation cause when the consumer closes the stream.
	ErrClientClosed = errors.New("render: stream closed by consumer")
	// ErrStreamClosed is returned by writes to a terminated stream.
	ErrStreamClosed = errors.New("render: write to closed stream")
	// ErrNilComponent is returned when a request carries no component.
	ErrNilComponent = errors.New("render: component is nil")

	errSessionClosed = errors.New("render: session closed")
)
