// Package logger provides the small leveled logger used by the codec and the
// command line tool.
package logger

import (
	"io"
	"log"
)

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
	Debugf(format string, v ...any)
}

type stdLogger struct {
	log   *log.Logger
	debug bool
}

// New returns a Logger writing to w. Debug lines are only emitted when debug is set.
func New(w io.Writer, debug bool) Logger {
	return &stdLogger{log: log.New(w, "", log.LstdFlags), debug: debug}
}

func (l *stdLogger) Infof(format string, v ...any)  { l.log.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...any) { l.log.Printf("[ERROR] "+format, v...) }

func (l *stdLogger) Debugf(format string, v ...any) {
	if l.debug {
		l.log.Printf("[DEBUG] "+format, v...)
	}
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
func (nopLogger) Debugf(string, ...any) {}
