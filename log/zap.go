package log

import (
	"go.uber.org/zap"
)

var Logger = zap.NewNop()

func InitProductionLogger() {
	Logger, _ = zap.NewProduction()
}

func InitDevelopmentLogger() {
	Logger, _ = zap.NewDevelopment()
}

// Init picks the development logger when debug is set.
func Init(debug bool) *zap.Logger {
	if debug {
		InitDevelopmentLogger()
	} else {
		InitProductionLogger()
	}
	if Logger == nil {
		Logger = zap.NewNop()
	}
	return Logger
}
