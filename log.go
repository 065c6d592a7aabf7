package sexpr

import (
	"io"

	_logger "github.com/jcgregorio/logger"
)

// Logger receives debug output from tokenizing, parsing and evaluation.
// *logger.Logger from github.com/jcgregorio/logger satisfies it.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

var defaultLogger Logger = NewLogger(discard{}, false)

// NewLogger returns a leveled logger that writes to w. Debug lines are only
// written when debug is true.
func NewLogger(w _logger.SyncWriter, debug bool) Logger {
	return _logger.NewFromOptions(&_logger.Options{
		SyncWriter:   w,
		IncludeDebug: debug,
	})
}

// SetLogger replaces the logger used by contexts that were not given one
// explicitly. It must be called before any evaluation starts.
func SetLogger(l Logger) {
	if l == nil {
		l = NewLogger(discard{}, false)
	}
	defaultLogger = l
}

type discard struct{}

func (discard) Write(p []byte) (int, error) {
	return io.Discard.Write(p)
}

func (discard) Sync() error {
	return nil
}
