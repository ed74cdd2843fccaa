package render

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// Stream is the byte stream of one render session. The render goroutine
// appends to it while the consumer reads; the buffer is unbounded so a
// crawler response can be completed before anything is read.
//
// Reads block until data is available or the producer terminates the stream,
// after which the remaining bytes are drained and io.EOF is returned.
type Stream struct {
	mu      sync.Mutex
	cond    *sync.Cond
	buf     bytes.Buffer
	written int64
	ended   bool
	closed  bool
	onClose func()
}

func newStream(onClose func()) *Stream {
	s := &Stream{onClose: onClose}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *Stream) write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended || s.closed {
		return 0, ErrStreamClosed
	}
	n, err := s.buf.Write(p)
	s.written += int64(n)
	s.cond.Broadcast()
	return n, err
}

// end terminates the producer side. Buffered bytes stay readable.
func (s *Stream) end() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return
	}
	s.ended = true
	s.cond.Broadcast()
}

// Read implements io.Reader.
func (s *Stream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.buf.Len() == 0 && !s.ended && !s.closed {
		s.cond.Wait()
	}
	if s.closed {
		return 0, ErrStreamClosed
	}
	if s.buf.Len() == 0 {
		return 0, io.EOF
	}
	return s.buf.Read(p)
}

// WriteTo copies the stream into w as chunks arrive, flushing after every
// chunk when w is an http.Flusher.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	flusher, _ := w.(http.Flusher)

	var total int64
	for {
		chunk, err := s.next()
		if len(chunk) > 0 {
			n, werr := w.Write(chunk)
			total += int64(n)
			if werr != nil {
				_ = s.Close()
				return total, werr
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

func (s *Stream) next() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.buf.Len() == 0 && !s.ended && !s.closed {
		s.cond.Wait()
	}
	if s.closed {
		return nil, ErrStreamClosed
	}
	if s.buf.Len() == 0 {
		return nil, io.EOF
	}
	return bytes.Clone(s.buf.Next(s.buf.Len())), nil
}

// Close discards unread bytes and aborts the render if it is still running.
func (s *Stream) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.buf.Reset()
	s.cond.Broadcast()
	onClose := s.onClose
	s.mu.Unlock()

	if onClose != nil {
		onClose()
	}
	return nil
}

// Written returns the number of bytes the render produced so far.
func (s *Stream) Written() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written
}

// Ended reports whether the producer has terminated the stream.
func (s *Stream) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}
