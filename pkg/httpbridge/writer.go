// Package httpbridge lets plain net/http handlers write to a response.Capability.
package httpbridge

import (
	"net/http"
	"sort"

	"github.com/unbasical/mockresponse/pkg/recorder"
	"github.com/unbasical/mockresponse/pkg/response"
)

var (
	_ http.ResponseWriter = (*Writer)(nil)
	_ http.Flusher        = (*Writer)(nil)
)

// Writer implements http.ResponseWriter on top of a response.Capability.
// The body is buffered and handed to End once the writer is closed.
type Writer struct {
	target      response.Capability
	header      http.Header
	body        []byte
	wroteHeader bool
	closed      bool
}

// New wraps the given capability
func New(target response.Capability) *Writer {
	return &Writer{
		target: target,
		header: http.Header{},
	}
}

// Header returns the response http.Header. Changes after the status was written are ignored.
func (w *Writer) Header() http.Header {
	return w.header
}

// Body returns the buffered body
func (w *Writer) Body() []byte { return w.body }

// Write buffers the data and streams it to the capability.
// The status 200 is written first if WriteHeader was not called.
func (w *Writer) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	w.body = append(w.body, b...)
	w.target.Write(b)
	return len(b), nil
}

// WriteHeader copies the headers to the capability and records the statusCode.
// Only the first call has an effect.
func (w *Writer) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	names := make([]string, 0, len(w.header))
	for name := range w.header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if values := w.header[name]; len(values) > 0 {
			w.target.Header(name, values[0])
		}
	}
	w.target.Status(statusCode, http.StatusText(statusCode))
}

// Flush is accepted, the body is only finalized by Close.
func (w *Writer) Flush() {}

// Close finalizes the response with the buffered body.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	w.target.End(w.body)
	return nil
}

// Record serves req with h into a fresh recorder and returns it finalized.
func Record(h http.Handler, req *http.Request, opts ...recorder.Option) *recorder.Recorder {
	r := recorder.New(opts...)
	w := New(r)
	h.ServeHTTP(w, req)
	_ = w.Close()
	return r
}
