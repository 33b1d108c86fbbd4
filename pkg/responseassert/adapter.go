// Package responseassert turns the state of a recorded response into test assertions.
//
// Every method reports failures through the wrapped assert.TestingT and returns
// whether the assertion held, in the manner of testify's assert package.
package responseassert

import (
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/unbasical/mockresponse/pkg/recorder"
	"github.com/unbasical/mockresponse/pkg/response"
)

type tHelper interface {
	Helper()
}

// Adapter asserts on a response.Reader.
type Adapter struct {
	t assert.TestingT
	r response.Reader
}

// New wraps r for assertions reported to t.
func New(t assert.TestingT, r response.Reader) *Adapter {
	return &Adapter{t: t, r: r}
}

func (a *Adapter) helper() {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
}

// Status asserts the recorded status code.
func (a *Adapter) Status(code int, msgAndArgs ...interface{}) bool {
	a.helper()
	return assert.Equal(a.t, code, a.r.StatusCode(), msgAndArgs...)
}

// Success asserts the status response.StatusSuccess.
func (a *Adapter) Success(msgAndArgs ...interface{}) bool {
	a.helper()
	return a.Status(response.StatusSuccess, msgAndArgs...)
}

// Header asserts that the header was set to value.
func (a *Adapter) Header(name, value string, msgAndArgs ...interface{}) bool {
	a.helper()
	if !a.HasHeader(name, msgAndArgs...) {
		return false
	}
	return assert.Equal(a.t, value, a.r.GetHeader(name), msgAndArgs...)
}

// HasHeader asserts that the header was set.
func (a *Adapter) HasHeader(name string, msgAndArgs ...interface{}) bool {
	a.helper()
	return assert.Contains(a.t, a.r.HeaderMap(), name, msgAndArgs...)
}

// NoHeader asserts that the header was never set.
func (a *Adapter) NoHeader(name string, msgAndArgs ...interface{}) bool {
	a.helper()
	return assert.NotContains(a.t, a.r.HeaderMap(), name, msgAndArgs...)
}

// Body asserts the finalized body.
func (a *Adapter) Body(expected string, msgAndArgs ...interface{}) bool {
	a.helper()
	return assert.Equal(a.t, expected, string(a.r.Body()), msgAndArgs...)
}

// BodyContains asserts that the finalized body contains sub.
func (a *Adapter) BodyContains(sub string, msgAndArgs ...interface{}) bool {
	a.helper()
	return assert.Contains(a.t, string(a.r.Body()), sub, msgAndArgs...)
}

// JSONBody asserts that the body is JSON equivalent to expected.
func (a *Adapter) JSONBody(expected string, msgAndArgs ...interface{}) bool {
	a.helper()
	return assert.JSONEq(a.t, expected, string(a.r.Body()), msgAndArgs...)
}

// HasCookie asserts that a cookie with the name was set.
func (a *Adapter) HasCookie(name string, msgAndArgs ...interface{}) bool {
	a.helper()
	return assert.Contains(a.t, a.r.Cookies(), name, msgAndArgs...)
}

// Cookie asserts the encoded Set-Cookie value of a cookie.
func (a *Adapter) Cookie(name, encoded string, msgAndArgs ...interface{}) bool {
	a.helper()
	if !a.HasCookie(name, msgAndArgs...) {
		return false
	}
	return assert.Equal(a.t, encoded, a.r.Cookies()[name], msgAndArgs...)
}

// CookieHasAttribute asserts that the cookie carries the attribute, e.g. "Secure" or "path=/app".
func (a *Adapter) CookieHasAttribute(name, attribute string, msgAndArgs ...interface{}) bool {
	a.helper()
	if !a.HasCookie(name, msgAndArgs...) {
		return false
	}
	attributes := strings.Split(a.r.Cookies()[name], "; ")[1:]
	return assert.Contains(a.t, attributes, attribute, msgAndArgs...)
}

// DownloadFile asserts the file passed to SendFile.
func (a *Adapter) DownloadFile(filename string, msgAndArgs ...interface{}) bool {
	a.helper()
	return assert.Equal(a.t, filename, a.r.DownloadFile(), msgAndArgs...)
}

// MatchesSnapshot compares the response with a golden file written by recorder.WriteSnapshot.
// The connection id is not compared.
func (a *Adapter) MatchesSnapshot(path string, msgAndArgs ...interface{}) bool {
	a.helper()
	want, err := recorder.LoadSnapshot(path)
	if !assert.NoError(a.t, err, msgAndArgs...) {
		return false
	}
	want = want.WithoutConnectionID()
	have := recorder.TakeSnapshot(a.r).WithoutConnectionID()
	if !cmp.Equal(want, have) {
		return assert.Fail(a.t, "Response does not match snapshot "+path+"! Diff: "+cmp.Diff(want, have), msgAndArgs...)
	}
	return true
}
