// Package logger prints session progress to a terminal. It implements the
// excelhandler.Logger interface with the check-mark style the command line
// uses, plus a level cutoff so backend chatter stays hidden unless asked
// for.
package logger

import (
	"fmt"
	"io"
)

// Level orders messages by importance.
type Level int

const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
)

type Logger struct {
	out io.Writer // destination for output
	min Level     // leveled messages below this are dropped
	buf []byte    // for accumulating text to write
}

// New creates a new Logger showing Info and above.
func New(out io.Writer) *Logger {
	return &Logger{out: out, min: InfoLevel}
}

// SetLevel moves the cutoff. TraceLevel shows everything.
func (l *Logger) SetLevel(min Level) {
	l.min = min
}

// SetOut redirects the output.
func (l *Logger) SetOut(out io.Writer) {
	l.out = out
}

// Run prints a message before running a process. Ok or Nok closes it.
func (l *Logger) Run(format string, v ...interface{}) {
	s := fmt.Sprintf(format, v...)
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	l.output("[ ] " + s)
}

// Ok prints a checkmark after a successful Run()
func (l *Logger) Ok() {
	l.outputln("\r[✓]")
}

// Nok prints a x mark after a unsuccessful Run()
func (l *Logger) Nok() {
	l.outputln("\r[✗]")
}

// Printf prints the plain text, regardless of the level cutoff.
func (l *Logger) Printf(format string, v ...interface{}) {
	l.output(fmt.Sprintf(format, v...))
}

// Trace for very low level logs.
func (l *Logger) Trace(format string, v ...interface{}) {
	l.leveled(TraceLevel, "[TRACE] ", format, v...)
}

// Debug for debugging information.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.leveled(DebugLevel, "[DEBUG] ", format, v...)
}

// Info for something noteworthy.
func (l *Logger) Info(format string, v ...interface{}) {
	l.leveled(InfoLevel, "[INFO] ", format, v...)
}

// Warn for a warning message.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.leveled(WarnLevel, "[WARN] ", format, v...)
}

// Error message.
func (l *Logger) Error(format string, v ...interface{}) {
	l.leveled(ErrorLevel, "[ERROR] ", format, v...)
}

func (l *Logger) leveled(lv Level, prefix, format string, v ...interface{}) {
	if lv < l.min {
		return
	}
	l.outputln(prefix + fmt.Sprintf(format, v...))
}

func (l *Logger) output(s string) {
	l.buf = l.buf[:0]
	l.buf = append(l.buf, s...)
	_, _ = l.out.Write(l.buf)
}

func (l *Logger) outputln(s string) {
	l.buf = l.buf[:0]
	l.buf = append(l.buf, s...)
	if len(s) == 0 || s[len(s)-1] != '\n' {
		l.buf = append(l.buf, '\n')
	}
	_, _ = l.out.Write(l.buf)
}
