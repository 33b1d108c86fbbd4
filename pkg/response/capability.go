// Package response describes the surface of a live HTTP response object, split
// into the mutations application code performs and the accessors tests read.
package response

// StatusSuccess is the status code of a successful response.
const StatusSuccess = 200

// ConnectionID identifies the connection a response belongs to.
// It is opaque and never used for transmission.
type ConnectionID string

// Capability is the mutation surface of a response. Application code should
// depend on it instead of a concrete response so that tests can hand in a
// recorder.
//
// Trailing variadic parameters are optional and may be omitted.
type Capability interface {
	// End finalizes the response body. Without content the body is empty.
	End(content ...[]byte)
	// Write streams a chunk of the body before it is finalized.
	Write(chunk []byte)
	// Header sets a header. The ucwords hint asks the server to normalize the case of the name.
	Header(name, value string, ucwords ...bool)
	// Cookie sets a cookie.
	Cookie(cookie Cookie)
	// Status sets the status code and an optional reason phrase.
	Status(code int, reason ...string)
	// Gzip enables response compression at the given level (default 1).
	Gzip(level ...int)
	// SendFile sends a file as the response. An optional offset and length select a range.
	SendFile(filename string, offsetAndLength ...int64)
}

// HeaderField is a single header name with its value.
type HeaderField struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Reader exposes the state of a response for inspection.
// None of its methods have side effects.
type Reader interface {
	Body() []byte
	// Status code, 0 if it was never set
	StatusCode() int
	// GetHeader returns the header value or the default (empty if omitted)
	GetHeader(name string, def ...string) string
	// Headers in insertion order
	Headers() []HeaderField
	HeaderMap() map[string]string
	// Cookies mapped to their encoded Set-Cookie values
	Cookies() map[string]string
	Trailers() map[string]string
	ConnectionID() ConnectionID
	DownloadFile() string
}
