/*
Package middleware composes the request pipeline of the gallery API.

RequireSession is the authorization gate: it admits or rejects requests
purely on the session cookie's verified claims, never touching the
database. CurrentUser is the stricter follow-up for endpoints that must
confirm the user still exists in the directory at call time.
*/
package middleware
