package middleware

import (
	"net/http"
	"strings"

	"github.com/aguasmedia/gallery/logger"
)

// LogRequest logs the request's method and requested URL using the
// enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following keys:
// - token
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			q := r.URL.Query()
			if val := q.Get("token"); val != "" {
				q.Set("token", "xxxxxxx")
			}

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			ls.Info(strings.Join([]string{r.Method, uri}, " "), nil)
			h.ServeHTTP(w, r)
		})
	}
}
