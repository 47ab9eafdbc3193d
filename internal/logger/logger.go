// Package logger provides the leveled logger used by the tl15 command.
package logger

import (
	"io"
	"log"
)

type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type stdLogger struct {
	l     *log.Logger
	quiet bool
}

// New returns a Logger writing to w.  If quiet is set, only errors are
// written.
func New(w io.Writer, quiet bool) Logger {
	return &stdLogger{l: log.New(w, "", 0), quiet: quiet}
}

func (s *stdLogger) Infof(format string, v ...interface{}) {
	if !s.quiet {
		s.l.Printf("[INFO] "+format, v...)
	}
}

func (s *stdLogger) Errorf(format string, v ...interface{}) { s.l.Printf("[ERROR] "+format, v...) }
