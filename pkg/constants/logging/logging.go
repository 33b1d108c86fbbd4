package logging

import (
	log "github.com/sirupsen/logrus"
)

// Label for component logs
const LabelComponent string = "component"

// Label for the connection a recorder stands in for
const LabelConnection string = "connectionId"

// Label for the recorded operation
const LabelOperation string = "operation"

// Label for errors which were degraded instead of returned
const LabelError string = "error"

func LogForComponent(component string) *log.Entry {
	return log.WithField(LabelComponent, component)
}

// LogForConnection returns a component logger which is tagged with the given connection.
func LogForConnection(component, connectionID string) *log.Entry {
	return LogForComponent(component).WithField(LabelConnection, connectionID)
}

// LogOperation logs a single recorded mutation on debug level.
func LogOperation(entry *log.Entry, operation string, fields log.Fields) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	entry.WithField(LabelOperation, operation).WithFields(fields).Debug("Recorded response operation")
}
