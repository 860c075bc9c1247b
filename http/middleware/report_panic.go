package middleware

import (
	"net/http"

	gallery "github.com/aguasmedia/gallery"
	sentryhttp "github.com/getsentry/sentry-go/http"
)

// ReportPanic wraps a handler so panics are recovered and reported to
// Sentry. Development skips the reporting and lets panics surface.
func ReportPanic(env gallery.Environment) Adapter {
	if env.IsDevelopment() || env.IsTesting() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(handler http.Handler) http.Handler {
		return sh.Handle(handler)
	}
}
