package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusNotFound)

	if rw.Status() != http.StatusNotFound {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusNotFound)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !rw.Written() {
		t.Error("Written() = false, want true")
	}
}

func TestResponseWriter_WriteHeader_OnlyOnce(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.Status() != http.StatusCreated {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusCreated)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusCreated)
	}
}

func TestResponseWriter_Write_ImplicitOK(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	n, err := rw.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 5 || rw.Size() != 5 {
		t.Errorf("Write() n = %d, Size() = %d, want 5", n, rw.Size())
	}
	if w.Code != http.StatusOK {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestResponseWriter_OnBeforeWrite(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	var calls []string
	rw.OnBeforeWrite(func() {
		calls = append(calls, "first")
		rw.Header().Set("X-Hook", "1")
	})
	rw.OnBeforeWrite(func() { calls = append(calls, "second") })

	_, _ = rw.Write([]byte("a"))
	_, _ = rw.Write([]byte("b"))
	rw.WriteHeader(http.StatusTeapot)

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("hooks ran as %v, want [first second]", calls)
	}
	if got := w.Header().Get("X-Hook"); got != "1" {
		t.Errorf("header set in hook = %q, want %q", got, "1")
	}
	if w.Body.String() != "ab" {
		t.Errorf("body = %q, want %q", w.Body.String(), "ab")
	}
}

func TestResponseWriter_OnBeforeWrite_AfterCommitIgnored(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)
	rw.WriteHeader(http.StatusOK)

	called := false
	rw.OnBeforeWrite(func() { called = true })
	_, _ = rw.Write([]byte("x"))

	if called {
		t.Error("hook registered after commit was called")
	}
}

func TestResponseWriter_Flush(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	hooked := false
	rw.OnBeforeWrite(func() { hooked = true })
	rw.Flush()

	if !hooked {
		t.Error("Flush() did not run hooks")
	}
	if !w.Flushed {
		t.Error("underlying writer was not flushed")
	}
	if !rw.Written() {
		t.Error("Written() = false after Flush")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	if rw.Unwrap() != w {
		t.Error("Unwrap() did not return the underlying writer")
	}
	if _, _, err := rw.Hijack(); err != http.ErrNotSupported {
		t.Errorf("Hijack() error = %v, want %v", err, http.ErrNotSupported)
	}
}
