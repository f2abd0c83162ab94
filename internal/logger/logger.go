// Package logger is the leveled logger handed to each command run. Lines
// keep the date and time prefix of the stdlib log package.
package logger

import (
	"fmt"
	"io"
	"log"
	"runtime/debug"
)

// Level is the severity of a log line.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Logger writes "LEVEL [name]: message" lines through a stdlib *log.Logger.
type Logger struct {
	name  string
	level Level
	out   *log.Logger
}

// New builds the logger for one tool run.
// debug lowers the threshold to DEBUG, quiet discards everything.
func New(name string, w io.Writer, debug, quiet bool) *Logger {
	var level = INFO
	if debug {
		level = DEBUG
	}
	if quiet {
		w = io.Discard
	}
	return &Logger{
		name:  name,
		level: level,
		out:   log.New(w, "", log.Ldate|log.Ltime),
	}
}

func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether lines at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	_ = l.out.Output(3, fmt.Sprintf("%s [%s]: %s", level, l.name, fmt.Sprintf(format, v...)))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(DEBUG, format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(INFO, format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf(WARNING, format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(ERROR, format, v...)
}

// Exception logs err at ERROR level followed by the stack of the caller,
// for errors that end a run.
func (l *Logger) Exception(err error) {
	l.logf(ERROR, "%+v\n%s", err, debug.Stack())
}

// Catch recovers a panic raised below it, logs it with the stack and
// stores it in *err. Use it deferred:
//
//	defer log.Catch(&err)
func (l *Logger) Catch(err *error) {
	var r = recover()
	if r == nil {
		return
	}
	l.Errorf("%v\n%s", r, debug.Stack())
	if e, ok := r.(error); ok {
		*err = e
		return
	}
	*err = fmt.Errorf("%v", r)
}
