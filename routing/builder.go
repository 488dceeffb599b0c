package routing

import (
	"fmt"
	"net/url"
	pathpkg "path"
	"regexp"
	"strings"

	"github.com/toneflix/flutterwave-go/core"
)

const (
	// LiveBaseURL is the production origin.
	LiveBaseURL = "https://api.flutterwave.com/v4/"
	// SandboxBaseURL is the developer sandbox origin.
	SandboxBaseURL = "https://developersandbox-api.flutterwave.com/"
)

// Param is one ordered key/value pair. Path and query parameters travel as
// ordered slices so the wire order is deterministic; Go maps would not be.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered parameter list.
type Params []Param

// P is shorthand for building a Param.
func P(key string, value any) Param {
	return Param{Key: key, Value: value}
}

// Get returns the first value registered under key.
func (p Params) Get(key string) (any, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return nil, false
}

// BaseURLFor returns the fixed origin for an environment. Anything other
// than live selects the sandbox.
func BaseURLFor(env core.Environment) string {
	if env == core.EnvironmentLive {
		return LiveBaseURL
	}
	return SandboxBaseURL
}

// Builder composes request URLs against a base origin captured once at
// construction, keeping URL building deterministic for the client's lifetime.
type Builder struct {
	baseURL string
}

func NewBuilder(env core.Environment) *Builder {
	return &Builder{baseURL: BaseURLFor(env)}
}

// NewBuilderWithBaseURL overrides the origin, primarily for tests against
// local fakes.
func NewBuilderWithBaseURL(raw string) *Builder {
	return &Builder{baseURL: strings.TrimSpace(raw)}
}

func (b *Builder) BaseURL() string {
	return b.baseURL
}

var duplicateSlashes = regexp.MustCompile(`([^:]/)/+`)

// BuildURL joins the base URL with the endpoint segments, collapsing
// duplicate slashes except the one following the scheme separator.
func (b *Builder) BuildURL(endpoint ...string) string {
	joined := pathpkg.Join(endpoint...)
	return duplicateSlashes.ReplaceAllString(b.baseURL+joined, "$1")
}

// BuildTargetURL joins base URL and path, substitutes path placeholders, and
// appends the query string.
func (b *Builder) BuildTargetURL(path string, pathParams Params, queryParams Params) string {
	built, _ := AssignPathParams(b.BuildURL(path), pathParams)
	return AppendQuery(built, queryParams)
}

// ParamKind selects how BuildParams renders a parameter list.
type ParamKind string

const (
	ParamPath  ParamKind = "path"
	ParamQuery ParamKind = "query"
)

// BuildParams renders params either as slash-joined path segments or as an
// URL-encoded query string, preserving insertion order.
func BuildParams(params Params, kind ParamKind) string {
	if kind == ParamPath {
		segments := make([]string, 0, len(params))
		for _, param := range params {
			segments = append(segments, encodeValue(param.Value))
		}
		return strings.Join(segments, "/")
	}

	pairs := make([]string, 0, len(params))
	for _, param := range params {
		pairs = append(pairs, url.QueryEscape(param.Key)+"="+url.QueryEscape(encodeValue(param.Value)))
	}
	return strings.Join(pairs, "&")
}

// AssignPathParams replaces both {key} and :key placeholders with the
// URL-encoded value. Params with no matching placeholder are ignored; their
// keys are returned so callers can assert on partially-applied routes.
func AssignPathParams(target string, params Params) (string, []string) {
	unused := []string{}
	for _, param := range params {
		encoded := url.PathEscape(encodeValue(param.Value))
		replaced := strings.ReplaceAll(target, "{"+param.Key+"}", encoded)
		replaced = strings.ReplaceAll(replaced, ":"+param.Key, encoded)
		if replaced == target {
			unused = append(unused, param.Key)
			continue
		}
		target = replaced
	}
	return target, unused
}

// AppendQuery appends the encoded params to the URL, using "?" when the URL
// has no query component yet and "&" otherwise. Empty params leave the URL
// unchanged.
func AppendQuery(target string, params Params) string {
	if len(params) == 0 {
		return target
	}
	separator := "?"
	if strings.Contains(target, "?") {
		separator = "&"
	}
	return target + separator + BuildParams(params, ParamQuery)
}

func encodeValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(v)
	}
}
