package routing

import (
	"strings"
)

// Route is a static endpoint definition: method, path template, and the
// default parameters used when the route is built without caller input.
// Immutable once constructed through NewRoute.
type Route struct {
	Path   string
	Method string
	Name   string
	Params Params
	Query  Params
}

// NewRoute normalizes a route definition: the method is upper-cased and the
// name defaults to the snake-cased path.
func NewRoute(def Route) Route {
	def.Method = strings.ToUpper(strings.TrimSpace(def.Method))
	def.Path = strings.TrimSpace(def.Path)
	if strings.TrimSpace(def.Name) == "" {
		def.Name = snakeCase(def.Path)
	}
	return def
}

// Key derives the deterministic route-table key:
// method + "-" + slug(path + "_" + name).
func (r Route) Key() string {
	name := r.Name
	if strings.TrimSpace(name) == "" {
		name = snakeCase(r.Path)
	}
	return strings.ToUpper(strings.TrimSpace(r.Method)) + "-" + slugify(r.Path+"_"+name)
}

// Build renders the route's full URL using its own stored params and query.
func (r Route) Build(builder *Builder) string {
	return builder.BuildTargetURL(r.Path, r.Params, r.Query)
}

func (r Route) String() string {
	return r.Method + " " + r.Path
}

// slugify lowercases and maps every run of non-alphanumeric characters to a
// single underscore. Leading separators are kept so keys derived from
// "/path" style templates stay distinct from bare "path" ones.
func slugify(value string) string {
	var out strings.Builder
	separated := false
	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			out.WriteRune(r)
			separated = false
			continue
		}
		if !separated {
			out.WriteByte('_')
			separated = true
		}
	}
	return out.String()
}

func snakeCase(value string) string {
	return slugify(value)
}
