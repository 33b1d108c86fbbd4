package response_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/unbasical/mockresponse/pkg/response"
)

func TestEncodeCookie_NameAndValueOnly(t *testing.T) {
	assert.Equal(t, "a=b", response.EncodeCookie(response.Cookie{Name: "a", Value: "b"}))
}

func TestEncodeCookie_EmptyValue(t *testing.T) {
	assert.Equal(t, "a=", response.EncodeCookie(response.Cookie{Name: "a"}))
}

func TestEncodeCookie_PercentEncoding(t *testing.T) {
	have := response.EncodeCookie(response.Cookie{Name: "user name", Value: "a&b=c/d"})
	assert.Equal(t, "user+name=a%26b%3Dc%2Fd", have)
}

func TestEncodeCookie_ZeroExpiryIsOmitted(t *testing.T) {
	for _, expires := range []interface{}{0, int64(0), 0.0, "", "0", time.Time{}, "definitely not a date", "+1 day", "tomorrow", true} {
		have := response.EncodeCookie(response.Cookie{Name: "a", Value: "b", Expires: expires})
		assert.Equal(t, "a=b", have, "expiry %#v should be omitted", expires)
	}
}

func TestEncodeCookie_FixedAttributeOrder(t *testing.T) {
	have := response.EncodeCookie(response.Cookie{
		Name:     "sid",
		Value:    "xyz",
		Path:     "/app",
		Secure:   true,
		HTTPOnly: true,
	})
	assert.Equal(t, "sid=xyz; path=/app; Secure; HttpOnly", have)
}

func TestEncodeCookie_AllAttributes(t *testing.T) {
	have := response.EncodeCookie(response.Cookie{
		Name:     "sid",
		Value:    "xyz",
		Expires:  1700000000,
		Path:     "/",
		Domain:   "example.org",
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Strict",
		Priority: "High",
	})
	want := "sid=xyz; domain=example.org; path=/; Expires=Tue, 14-Nov-2023 22:13:20 GMT; Secure; HttpOnly; SameSite=Strict; Priority=High"
	assert.Equal(t, want, have)
}

func TestEncodeCookie_ExpiryKinds(t *testing.T) {
	want := "a=b; Expires=Tue, 14-Nov-2023 22:13:20 GMT"
	for _, expires := range []interface{}{
		1700000000,
		int64(1700000000),
		uint32(1700000000),
		float64(1700000000),
		time.Unix(1700000000, 0),
		"2023-11-14 22:13:20",
		"Tue, 14 Nov 2023 22:13:20 GMT",
	} {
		have := response.EncodeCookie(response.Cookie{Name: "a", Value: "b", Expires: expires})
		assert.Equal(t, want, have, "expiry %#v", expires)
	}
}

func TestExpiryTimestamp_Errors(t *testing.T) {
	ts, err := response.ExpiryTimestamp("next tuesday-ish")
	assert.Error(t, err)
	assert.Zero(t, ts)

	ts, err = response.ExpiryTimestamp(struct{}{})
	assert.EqualError(t, err, "unsupported cookie expiry type struct {}")
	assert.Zero(t, ts)
}

func TestExpiryTimestamp_Unset(t *testing.T) {
	ts, err := response.ExpiryTimestamp(nil)
	assert.NoError(t, err)
	assert.Zero(t, ts)
}

func TestFormatCookieDate(t *testing.T) {
	assert.Equal(t, "Thu, 01-Jan-1970 00:00:01 GMT", response.FormatCookieDate(1))
}

func TestEncodeCookie_EscapesTilde(t *testing.T) {
	have := response.EncodeCookie(response.Cookie{Name: "a b~*", Value: "~home"})
	assert.Equal(t, "a+b%7E%2A=%7Ehome", have)
}
