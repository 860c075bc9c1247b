// Package router registers the gallery API's routes on a gorilla/mux
// router, layering per-route middleware over the stack applied to every
// request. OPTIONS is registered alongside each route's method so CORS
// preflights reach the middleware stack.
package router
