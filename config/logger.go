package config

import (
	"github.com/MonkyMars/gecho"
)

// InitializeLogger builds the process logger with the level derived from APP_ENV
func InitializeLogger() *gecho.Logger {
	logLevel := gecho.ParseLogLevel(GetLogLevel())
	return gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))
}
