package router

import (
	"net/http"

	"github.com/ferdiebergado/goexpress"
)

// goexpressRouter registers every route on one shared goexpress.Router. A
// group is a view of that router carrying the joined prefix and the group
// middlewares, which are prepended to the middlewares of each route.
type goexpressRouter struct {
	handler     *goexpress.Router
	prefix      string
	middlewares []Middleware
	group       bool
}

var _ Router = (*goexpressRouter)(nil)

//nolint:ireturn // the Router interface hides the goexpress types from callers
func NewGoexpressRouter() Router {
	return &goexpressRouter{
		handler: goexpress.New(),
	}
}

func (r *goexpressRouter) Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Get(r.prefix+pattern, handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Post(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Post(r.prefix+pattern, handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Put(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Put(r.prefix+pattern, handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Patch(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Patch(r.prefix+pattern, handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Delete(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Delete(r.prefix+pattern, handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Options(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Options(r.prefix+pattern, handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// Use adds a global middleware on the root router. Inside a group it only
// applies to the routes registered after it.
func (r *goexpressRouter) Use(middleware Middleware) {
	if !r.group {
		r.handler.Use(middleware)
		return
	}
	r.middlewares = append(r.middlewares, middleware)
}

func (r *goexpressRouter) Group(prefix string, fn func(r Router), middlewares ...Middleware) {
	fn(&goexpressRouter{
		handler:     r.handler,
		prefix:      r.prefix + prefix,
		middlewares: r.chain(middlewares),
		group:       true,
	})
}

// chain returns the group middlewares followed by mws in a new slice.
func (r *goexpressRouter) chain(mws []Middleware) []Middleware {
	out := make([]Middleware, 0, len(r.middlewares)+len(mws))
	out = append(out, r.middlewares...)
	return append(out, mws...)
}
