// Package recorder provides an in-memory stand-in for a live HTTP response.
//
// A Recorder accepts every call of response.Capability without performing any
// I/O and makes the resulting state available through response.Reader.
// A Recorder belongs to a single test and must not be shared between goroutines.
package recorder

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/unbasical/mockresponse/internal/pkg/util"
	"github.com/unbasical/mockresponse/pkg/constants/logging"
	"github.com/unbasical/mockresponse/pkg/response"
)

const component = "ResponseRecorder"

var (
	_ response.Capability = (*Recorder)(nil)
	_ response.Reader     = (*Recorder)(nil)
)

// Recorder records the state a response would have been sent with.
type Recorder struct {
	body         []byte
	statusCode   int
	headers      *util.OrderedMap[string]
	cookies      map[string]string
	downloadFile string
	connectionID response.ConnectionID
	trailers     map[string]string

	logger *log.Entry
	// set while the recorder waits in a Pool
	pooled bool
}

// Option configures a Recorder on creation.
type Option func(*Recorder)

// WithConnectionID sets the identifier of the connection the recorder stands in for.
func WithConnectionID(id response.ConnectionID) Option {
	return func(r *Recorder) {
		r.connectionID = id
	}
}

// New creates an empty recorder. Without WithConnectionID a random connection id is assigned.
func New(opts ...Option) *Recorder {
	r := &Recorder{}
	r.reset(opts)
	return r
}

// Reset restores the initial state, assigning a fresh connection id.
func (r *Recorder) Reset() {
	r.reset(nil)
}

func (r *Recorder) reset(opts []Option) {
	r.body = []byte{}
	r.statusCode = 0
	if r.headers == nil {
		r.headers = util.NewOrderedMap[string]()
	} else {
		r.headers.Clear()
	}
	r.cookies = map[string]string{}
	r.downloadFile = ""
	r.trailers = map[string]string{}
	r.connectionID = ""

	for _, opt := range opts {
		opt(r)
	}
	if r.connectionID == "" {
		r.connectionID = response.ConnectionID(uuid.NewString())
	}
	r.logger = logging.LogForConnection(component, string(r.connectionID))
}

/*
 * ================ Mutations ================
 */

// End replaces the body with the given content.
func (r *Recorder) End(content ...[]byte) {
	body := []byte{}
	for _, c := range content {
		body = append(body, c...)
	}
	r.body = body
	logging.LogOperation(r.logger, "end", log.Fields{"size": len(body)})
}

// Write accepts a streamed chunk but does not record it. Only End determines the body.
func (r *Recorder) Write(chunk []byte) {
	logging.LogOperation(r.logger, "write", log.Fields{"size": len(chunk)})
}

// Header stores the value under the exact name given, the ucwords hint is ignored.
func (r *Recorder) Header(name, value string, ucwords ...bool) {
	r.headers.Set(name, value)
	logging.LogOperation(r.logger, "header", log.Fields{"name": name})
}

// Cookie encodes the cookie immediately and stores it under its name.
func (r *Recorder) Cookie(cookie response.Cookie) {
	encoded := response.EncodeCookie(cookie)
	r.cookies[cookie.Name] = encoded
	logging.LogOperation(r.logger, "cookie", log.Fields{"name": cookie.Name, "value": encoded})
}

// Status stores the status code. The reason phrase is discarded.
func (r *Recorder) Status(code int, reason ...string) {
	r.statusCode = code
	logging.LogOperation(r.logger, "status", log.Fields{"code": code})
}

// Gzip does nothing.
func (r *Recorder) Gzip(level ...int) {
	logging.LogOperation(r.logger, "gzip", nil)
}

// SendFile remembers the filename. Offset and length are not retained.
func (r *Recorder) SendFile(filename string, offsetAndLength ...int64) {
	r.downloadFile = filename
	logging.LogOperation(r.logger, "sendfile", log.Fields{"file": filename})
}

/*
 * ================ Accessors ================
 */

// Body returns the finalized body, never nil.
func (r *Recorder) Body() []byte {
	return append([]byte{}, r.body...)
}

// StatusCode returns the recorded status or 0 if none was set.
func (r *Recorder) StatusCode() int {
	return r.statusCode
}

// GetHeader returns the value of the header or the first default if it was never set.
func (r *Recorder) GetHeader(name string, def ...string) string {
	if v, ok := r.headers.Get(name); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return ""
}

// GetHeaderKey is an alias of GetHeader.
func (r *Recorder) GetHeaderKey(name string, def ...string) string {
	return r.GetHeader(name, def...)
}

// Headers returns all headers in the order they were first set.
func (r *Recorder) Headers() []response.HeaderField {
	fields := make([]response.HeaderField, 0, r.headers.Len())
	for _, name := range r.headers.Keys() {
		value, _ := r.headers.Get(name)
		fields = append(fields, response.HeaderField{Name: name, Value: value})
	}
	return fields
}

// HeaderMap returns all headers without their order.
func (r *Recorder) HeaderMap() map[string]string {
	return r.headers.Map()
}

// Cookies returns the encoded Set-Cookie value of every cookie by name.
func (r *Recorder) Cookies() map[string]string {
	return copyMap(r.cookies)
}

// Trailers is always empty.
func (r *Recorder) Trailers() map[string]string {
	return copyMap(r.trailers)
}

// ConnectionID returns the id of the connection the recorder stands in for.
func (r *Recorder) ConnectionID() response.ConnectionID {
	return r.connectionID
}

// DownloadFile returns the filename passed to SendFile, empty if it was never called.
func (r *Recorder) DownloadFile() string {
	return r.downloadFile
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
