package api

import (
	"net/http"
	"strings"
)

// HandlerFunc turns a request into a response value. A returned error is
// written by WriteError.
type HandlerFunc func(r *http.Request) (Responder, error)

// Route binds a method and path template to a handler. Placeholders such as
// {user_id} bind exactly one path segment.
type Route struct {
	Method  string
	Pattern string
	Name    string
	Handler HandlerFunc
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.service(
		Route{Method: http.MethodGet, Pattern: "/", Name: "hello", Handler: s.handleHello},
		Route{Method: http.MethodPost, Pattern: "/echo", Name: "echo", Handler: s.handleEcho},
		Route{Method: http.MethodGet, Pattern: "/users/{user_id}/{friend}", Name: "with_query_string", Handler: s.handleWithQueryString},
		Route{Method: http.MethodGet, Pattern: "/json/{name}", Name: "custom_json", Handler: s.handleCustomJSON},
	)

	s.route(http.MethodGet, "/either/{value}", "with_either", s.handleWithEither)
	s.route(http.MethodGet, "/hey", "manual_hello", s.handleManualHello)
}

// service registers declared routes.
func (s *Server) service(routes ...Route) {
	for _, rt := range routes {
		s.register(rt)
	}
}

// route registers a handler by explicit method and pattern. It routes exactly
// like service.
func (s *Server) route(method, pattern, name string, h HandlerFunc) {
	s.register(Route{Method: method, Pattern: pattern, Name: name, Handler: h})
}

func (s *Server) register(rt Route) {
	s.router.Handle(rt.Method+" "+muxPattern(rt.Pattern), s.adapt(rt.Handler))
	s.routes = append(s.routes, rt)
}

// muxPattern makes a trailing-slash template match only itself; ServeMux
// would otherwise treat it as a prefix.
func muxPattern(pattern string) string {
	if strings.HasSuffix(pattern, "/") {
		return pattern + "{$}"
	}
	return pattern
}

// adapt converts a HandlerFunc into an http.Handler.
func (s *Server) adapt(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := h(r)
		if err != nil {
			s.logger.DebugContext(r.Context(), "Handler error", "path", r.URL.Path, "error", err)
			WriteError(w, err)
			return
		}
		resp.Respond(w)
	})
}
