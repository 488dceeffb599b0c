package routing

// Router holds a declarative route table keyed by each route's derived key.
// Registration is last-write-wins on key collisions; lookups never fail with
// an error, they report a boolean.
type Router struct {
	builder *Builder
	routes  map[string]Route
	order   []string
}

func NewRouter(builder *Builder, routes ...Route) *Router {
	r := &Router{
		builder: builder,
		routes:  map[string]Route{},
	}
	for _, route := range routes {
		r.Register(route)
	}
	return r
}

// Register adds a route, overwriting any earlier route with the same key.
func (r *Router) Register(def Route) {
	route := NewRoute(def)
	key := route.Key()
	if _, exists := r.routes[key]; !exists {
		r.order = append(r.order, key)
	}
	r.routes[key] = route
}

// GetRoute looks a route up by exact key first, then by a linear scan over
// route names.
func (r *Router) GetRoute(keyOrName string) (Route, bool) {
	if route, ok := r.routes[keyOrName]; ok {
		return route, true
	}
	for _, key := range r.order {
		if route := r.routes[key]; route.Name == keyOrName {
			return route, true
		}
	}
	return Route{}, false
}

// GetRouteByDefinition recomputes the key of a route-shaped definition and
// looks it up.
func (r *Router) GetRouteByDefinition(def Route) (Route, bool) {
	route, ok := r.routes[NewRoute(def).Key()]
	return route, ok
}

// GetRoutePath builds the full URL for a named route using its stored
// params and query.
func (r *Router) GetRoutePath(name string) (string, bool) {
	route, ok := r.GetRoute(name)
	if !ok {
		return "", false
	}
	return route.Build(r.builder), true
}

// Routes returns all registered routes in registration order.
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.routes[key])
	}
	return out
}
