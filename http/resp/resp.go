// Package resp writes the JSON responses the gallery API sends,
// logging failures server-side while keeping internal detail out of
// client-facing bodies.
package resp

import (
	"encoding/json"
	"net/http"

	"github.com/aguasmedia/gallery/logger"
)

// A Responder renders JSON responses and logs errors with the app Logger.
type Responder struct {
	l logger.Logger
}

func NewResponder(l logger.Logger) *Responder { return &Responder{l: l} }

// A Response is the state accumulated by Fn options before rendering.
type Response struct {
	code int
	data interface{}
	msg  string
}

// A Fn configures a Response under construction.
type Fn func(*Response)

// Code sets the HTTP status code.
func Code(code int) Fn {
	return func(r *Response) { r.code = code }
}

// Data sets the body to render as JSON.
func Data(data interface{}) Fn {
	return func(r *Response) { r.data = data }
}

// Msg sets the client-safe error message for Err.
func Msg(msg string) Fn {
	return func(r *Response) { r.msg = msg }
}

// Json writes a JSON response composed from the provided options,
// defaulting to 200 and an empty object body.
func (d *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) {
	res := &Response{code: http.StatusOK}
	for _, opt := range opts {
		opt(res)
	}

	if res.data == nil {
		res.data = struct{}{}
	}

	b, err := json.Marshal(res.data)
	if err != nil {
		d.l.Error("failed marshaling response body", &logger.LogContext{Error: err, Request: r})
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.code)
	w.Write(b)
}

// Err logs the error server-side and writes a JSON error body carrying
// only the client-safe message, defaulting to 500.
//
// The body shape is {"success":false,"error":"..."} on every failure path
// so clients need exactly one error contract.
func (d *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	res := &Response{code: http.StatusInternalServerError}
	for _, opt := range opts {
		opt(res)
	}

	if res.msg == "" {
		res.msg = http.StatusText(res.code)
	}

	if err != nil {
		d.l.Error(res.msg, &logger.LogContext{Error: err, Request: r})
	}

	d.Json(w, r, Code(res.code), Data(map[string]interface{}{
		"success": false,
		"error":   res.msg,
	}))
}
