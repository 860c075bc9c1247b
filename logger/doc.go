// Package logger provides the leveled logging used throughout the gallery
// API, printing to stdout with the call site included and optionally
// shipping errors to Sentry when SENTRY_DSN is set.
package logger
