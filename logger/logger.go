package logger

import (
	"fmt"
	"log"
	"os"
	"path"
	"regexp"
	"runtime"

	"github.com/fatih/color"
)

const knownFrames = 2

var galleryPathRegexp = regexp.MustCompile("gallery.*$")

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

func NewLogLevel(val string) LogLevel {
	switch val {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	case "FATAL":
		return LogLevelFatal
	default:
		return LogLevelUnk
	}
}

func (ll LogLevel) String() string {
	return map[LogLevel]string{
		LogLevelDebug: "[DEBUG]",
		LogLevelInfo:  "[INFO]",
		LogLevelWarn:  "[WARN]",
		LogLevelError: "[ERROR]",
		LogLevelFatal: "[FATAL]",
		LogLevelUnk:   "[UNK]",
	}[ll]
}

// GalleryLogger implements Logger using log.
type GalleryLogger struct {
	env  string
	l    *log.Logger
	ll   LogLevel
	skip int
}

// New constructs a GalleryLogger.
//
// Logs are printed to os.Stdout by default, using the std lib log pkg.
// The default environment is DEVELOPMENT.
// The default log level is INFO.
//
// When SENTRY_DSN is set, the returned Logger additionally ships
// error-and-above logs to Sentry.
func New(opts ...OptFn) Logger {
	l := &GalleryLogger{
		env: "DEVELOPMENT",
		l:   log.New(os.Stdout, "", log.LstdFlags),
		ll:  LogLevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		l.Info("SENTRY_DSN set, configuring SentryLogger", nil)
		return NewSentryLogger(l, dsn)
	}

	return l
}

// Debug writes a debug log.
func (l *GalleryLogger) Debug(msg string, ctx *LogContext) {
	if l.ll > LogLevelDebug {
		return
	}

	l.log(color.WhiteString, LogLevelDebug, msg, ctx)
}

// Error writes an error log.
func (l *GalleryLogger) Error(msg string, ctx *LogContext) {
	if l.ll > LogLevelError {
		return
	}

	l.log(color.RedString, LogLevelError, msg, ctx)
}

// Fatal writes a fatal log.
func (l *GalleryLogger) Fatal(msg string, ctx *LogContext) {
	if l.ll > LogLevelFatal {
		return
	}

	l.log(color.MagentaString, LogLevelFatal, msg, ctx)
}

// Info writes an info log.
func (l *GalleryLogger) Info(msg string, ctx *LogContext) {
	if l.ll > LogLevelInfo {
		return
	}

	l.log(color.BlueString, LogLevelInfo, msg, ctx)
}

// Warn writes a warning log.
func (l *GalleryLogger) Warn(msg string, ctx *LogContext) {
	if l.ll > LogLevelWarn {
		return
	}

	l.log(color.YellowString, LogLevelWarn, msg, ctx)
}

// LogLevel returns the LogLevel set for the GalleryLogger.
func (l *GalleryLogger) LogLevel() LogLevel { return l.ll }

// log executes printing the log message, including any context if available.
func (l *GalleryLogger) log(colorizer func(string, ...interface{}) string, level LogLevel, msg string, ctx *LogContext) {
	// skip covers wrappers, like SentryLogger, interposing between the
	// call site and this method.
	_, file, line, _ := runtime.Caller(knownFrames + l.skip)

	var toPrint string
	if match := galleryPathRegexp.Find([]byte(file)); match != nil {
		toPrint = string(match)
	} else {
		toPrint = path.Base(file)
	}

	toPrint = fmt.Sprintf("%s:%d %s %q", toPrint, line, level, msg)
	if ctx != nil {
		b, err := ctx.MarshalText()
		if err != nil {
			b = []byte(fmt.Sprint("failed marshaling log context: ", err))
		}

		if len(b) > 0 {
			toPrint += fmt.Sprintf(" log_context=%s", b)
		}
	}

	l.l.Println(colorizer(toPrint))
}
