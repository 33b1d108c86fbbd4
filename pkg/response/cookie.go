package response

import (
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/unbasical/mockresponse/pkg/constants/logging"
)

// Layout of the Expires attribute, the zone is always appended as GMT.
const cookieDateLayout = "Mon, 02-Jan-2006 15:04:05"

// Cookie holds the arguments of a cookie call. Every field except Name is
// optional and its zero value means "not set".
type Cookie struct {
	Name  string
	Value string
	// Expires is either a date string, a Unix timestamp (any integer or float kind) or a time.Time.
	Expires  interface{}
	Path     string
	Domain   string
	Secure   bool
	HTTPOnly bool
	SameSite string
	Priority string
}

// EncodeCookie assembles the Set-Cookie value for c. Attributes are always
// emitted in the order domain, path, Expires, Secure, HttpOnly, SameSite, Priority.
//
// An expiry which resolves to the Unix timestamp 0, including one that cannot be
// parsed, leaves out the Expires attribute.
func EncodeCookie(c Cookie) string {
	var b strings.Builder
	b.WriteString(formEscape(c.Name))
	b.WriteByte('=')
	b.WriteString(formEscape(c.Value))

	if c.Domain != "" {
		b.WriteString("; domain=" + c.Domain)
	}
	if c.Path != "" {
		b.WriteString("; path=" + c.Path)
	}

	timestamp, err := ExpiryTimestamp(c.Expires)
	if err != nil {
		logging.LogForComponent("Cookie").WithFields(log.Fields{
			logging.LabelError: err.Error(),
			"cookie":           c.Name,
		}).Debug("Dropping Expires attribute")
	}
	if timestamp != 0 {
		b.WriteString("; Expires=" + FormatCookieDate(timestamp))
	}

	if c.Secure {
		b.WriteString("; Secure")
	}
	if c.HTTPOnly {
		b.WriteString("; HttpOnly")
	}
	if c.SameSite != "" {
		b.WriteString("; SameSite=" + c.SameSite)
	}
	if c.Priority != "" {
		b.WriteString("; Priority=" + c.Priority)
	}
	return b.String()
}

// formEscape is url.QueryEscape with '~' escaped as well.
func formEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "~", "%7E")
}

// FormatCookieDate renders a Unix timestamp the way the Expires attribute expects it.
func FormatCookieDate(timestamp int64) string {
	return time.Unix(timestamp, 0).UTC().Format(cookieDateLayout) + " GMT"
}

// ExpiryTimestamp resolves a cookie expiry to a Unix timestamp.
// Unset expiries resolve to 0 without an error, unusable ones to 0 with an error.
func ExpiryTimestamp(expires interface{}) (int64, error) {
	switch v := expires.(type) {
	case nil:
		return 0, nil
	case string:
		if v == "" || v == "0" {
			return 0, nil
		}
		t, err := dateparse.ParseIn(v, time.UTC)
		if err != nil {
			return 0, errors.Wrapf(err, "unable to parse cookie expiry %q", v)
		}
		return t.Unix(), nil
	case time.Time:
		if v.IsZero() {
			return 0, nil
		}
		return v.Unix(), nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	default:
		return 0, errors.Errorf("unsupported cookie expiry type %T", expires)
	}
}
