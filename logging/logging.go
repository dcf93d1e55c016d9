package logging

import (
	"io"
	"os"

	gologging "github.com/op/go-logging"
)

type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = gologging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend gologging.LeveledBackend

// Logger is the leveled logger every package writes through.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

func init() {
	SetSink(os.Stderr)
}

// New creates a named logger. The name shows up as the module in each line.
func New(name string) Logger {
	return gologging.MustGetLogger(name)
}

// SetSink replaces the output of all loggers. The level resets to Info.
func SetSink(sink io.Writer) {
	backend := gologging.NewLogBackend(sink, "", 0)
	backendWithFormatter := gologging.NewBackendFormatter(backend, format)
	leveledBackend = gologging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(gologging.INFO, "")
	gologging.SetBackend(leveledBackend)
}

func SetLevel(level Level) {
	leveledBackend.SetLevel(level.toBackend(), "")
}

// ParseLevel maps a config string (debug, info, notice, warning, error) to a Level.
func ParseLevel(s string) (Level, bool) {

	switch s {
	case "debug":
		return Debug, true
	case "info", "":
		return Info, true
	case "notice":
		return Notice, true
	case "warning", "warn":
		return Warning, true
	case "error":
		return Error, true
	}

	return Info, false
}

func (l Level) toBackend() gologging.Level {

	switch l {
	case Debug:
		return gologging.DEBUG
	case Notice:
		return gologging.NOTICE
	case Warning:
		return gologging.WARNING
	case Error:
		return gologging.ERROR
	default:
		return gologging.INFO
	}
}
