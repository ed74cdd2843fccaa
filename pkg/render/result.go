package render

import "net/http"

// Result is a document ready to be sent.
type Result struct {
	// Status as seen when the stream was handed off.
	Status int
	Header http.Header
	Body   *Stream
	Locale string

	Session *Session
}

// Serve writes the headers and status, then copies the stream to w,
// flushing after every chunk.
func (res *Result) Serve(w http.ResponseWriter) error {
	h := w.Header()
	for k, v := range res.Header {
		h[k] = v
	}
	w.WriteHeader(res.Status)

	_, err := res.Body.WriteTo(w)
	return err
}
