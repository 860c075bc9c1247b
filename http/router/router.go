package router

import (
	"net/http"

	"github.com/aguasmedia/gallery/http/middleware"
	"github.com/gorilla/mux"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests for the gallery API's endpoints.
type Router struct {
	everyReqStack []middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router].
func New() *Router {
	return &Router{r: mux.NewRouter()}
}

// AuthedRoutes registers the set of Routes as those requiring an
// authorized session, applying the provided gate ahead of any
// route-specific middleware.
func (r *Router) AuthedRoutes(gate middleware.Adapter, routes []Route, middlewares ...middleware.Adapter) {
	r.HandleRoutes(routes, append([]middleware.Adapter{gate}, middlewares...)...)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(handler, r.everyReqStack...)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append(r.everyReqStack, middlewares...)
		mws = append(mws, route.Middlewares...)
		r.r.Handle(route.Path, middleware.Chain(route.Handler, mws...)).Methods(route.Method, http.MethodOptions)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/users") handles requests to endpoints like /users/{id}
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		r:             r.r.PathPrefix(prefix).Subrouter(),
		everyReqStack: r.everyReqStack,
	}
}
