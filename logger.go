package excelhandler

import "io"

// Logger interface contains the methods needed to properly display log
// messages. The logger package provides a terminal implementation; a
// Handler built without one discards everything.
type Logger interface {
	Run(format string, v ...interface{})
	Ok()
	Nok()
	Printf(format string, v ...interface{})
	Trace(format string, v ...interface{})
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	SetOut(out io.Writer)
}

// nopLogger drops every message.
type nopLogger struct{}

func (nopLogger) Run(string, ...interface{})    {}
func (nopLogger) Ok()                           {}
func (nopLogger) Nok()                          {}
func (nopLogger) Printf(string, ...interface{}) {}
func (nopLogger) Trace(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{})  {}
func (nopLogger) Info(string, ...interface{})   {}
func (nopLogger) Warn(string, ...interface{})   {}
func (nopLogger) Error(string, ...interface{})  {}
func (nopLogger) SetOut(io.Writer)              {}
