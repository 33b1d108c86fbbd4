// Package util contains helper data structures and logging glue.
package util

import log "github.com/sirupsen/logrus"

// UTCFormatter wraps a logrus formatter and writes every timestamp in UTC.
// Without a wrapped formatter a logrus.TextFormatter with full timestamps is used.
type UTCFormatter struct {
	log.Formatter
}

// Format formats the time on log entries for the UTC location
func (u UTCFormatter) Format(e *log.Entry) ([]byte, error) {
	e.Time = e.Time.UTC()
	if u.Formatter == nil {
		return (&log.TextFormatter{FullTimestamp: true}).Format(e)
	}
	return u.Formatter.Format(e)
}
