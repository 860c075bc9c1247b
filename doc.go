// Package gallery holds the shared vocabulary of the client gallery API:
// the error taxonomy every package wraps with, the typed context keys
// request middleware stashes values under, and the Environment the process
// runs in.
package gallery
