// Package common provides constants that are used within the entire module
package common

// Version of mockresponse (probably set by CI-pipeline)
// nolint:gocritic,gochecknoglobals
var Version = "0.1.0"
