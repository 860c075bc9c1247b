package logger

import (
	"encoding"
	"encoding/json"
	"net/http"
)

var _ encoding.TextMarshaler = LogContext{}

// LogUser is the interface exposing attributes of a user to a LogContext.
type LogUser interface {
	// GetID retrieves the application's identifier for a user.
	GetID() uint

	// GetEmail retrieves the email address of the user.
	GetEmail() string
}

// A LogContext provides additional information for a Logger method that
// cannot be tersely captured in the message itself.
type LogContext struct {
	// Data is any information pertinent at the time of the logging event.
	Data map[string]interface{}

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Request is the *http.Request that may or may not have been open during the logging event.
	Request *http.Request

	// User is the user whose session was active during the logging event.
	User LogUser
}

// MarshalText converts LogContext into a JSON representation,
// eliminating zero-value fields or fields not requiring logging.
//
// MarshalText implements [encoding.TextMarshaler].
func (lc LogContext) MarshalText() ([]byte, error) {
	m := make(map[string]interface{})
	if lc.Data != nil {
		m["data"] = lc.Data
	}

	if lc.Error != nil {
		m["error"] = lc.Error.Error()
	}

	if lc.Request != nil {
		r := make(map[string]interface{})
		r["method"] = lc.Request.Method
		r["url"] = lc.Request.URL.String()
		m["request"] = r
	}

	if lc.User != nil {
		u := make(map[string]interface{})
		u["id"] = lc.User.GetID()
		u["email"] = lc.User.GetEmail()
		m["user"] = u
	}

	if len(m) == 0 {
		return nil, nil
	}

	return json.Marshal(m)
}
