package configs

import (
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/unbasical/mockresponse/internal/pkg/util"
)

// ConfigureLogging applies the logging config to the logrus standard logger.
// Timestamps are always written in UTC.
func ConfigureLogging(conf LoggingConfig, out io.Writer) {
	if out != nil {
		log.SetOutput(out)
	}

	switch strings.ToUpper(conf.Format) {
	case "JSON":
		log.SetFormatter(util.UTCFormatter{Formatter: &log.JSONFormatter{}})
	default:
		log.SetFormatter(util.UTCFormatter{Formatter: &log.TextFormatter{FullTimestamp: true}})
	}

	switch strings.ToUpper(conf.Level) {
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
	case "WARN":
		log.SetLevel(log.WarnLevel)
	case "ERROR":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
