package logger

import "log"

// An OptFn is a functional option configuring a GalleryLogger when constructing a new one.
type OptFn func(*GalleryLogger)

// WithEnv sets the environment the GalleryLogger is operating in.
func WithEnv(env string) OptFn {
	return func(l *GalleryLogger) {
		l.env = env
	}
}

// WithLevel sets the log level the GalleryLogger uses.
func WithLevel(level LogLevel) OptFn {
	return func(l *GalleryLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger the GalleryLogger uses.
func WithLogger(log *log.Logger) OptFn {
	return func(l *GalleryLogger) {
		l.l = log
	}
}
