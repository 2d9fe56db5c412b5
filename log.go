package krill

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// Logger is the logfmt logger used by the package. Replace it with SetLogger.
var Logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))

// SetLogger sets the package logger, e.g. kitlog.NewNopLogger() to silence it.
func SetLogger(l kitlog.Logger) {
	if l == nil {
		l = kitlog.NewNopLogger()
	}
	Logger = l
}
