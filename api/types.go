package api

import (
	"strconv"

	"github.com/toneflix/flutterwave-go/routing"
)

// Meta is the free-form metadata bag many resources accept and return.
type Meta map[string]any

// ListQuery is the page-based pagination query shared by most list
// endpoints. Zero values are omitted from the query string.
type ListQuery struct {
	Page int
	Size int
}

func (q ListQuery) params() routing.Params {
	params := routing.Params{}
	if q.Page > 0 {
		params = append(params, routing.P("page", strconv.Itoa(q.Page)))
	}
	if q.Size > 0 {
		params = append(params, routing.P("size", strconv.Itoa(q.Size)))
	}
	return params
}

// CursorQuery is the cursor-based pagination query used by the transfer
// family of endpoints.
type CursorQuery struct {
	Next     string
	Previous string
	Limit    int
}

func (q CursorQuery) params() routing.Params {
	params := routing.Params{}
	if q.Next != "" {
		params = append(params, routing.P("next", q.Next))
	}
	if q.Previous != "" {
		params = append(params, routing.P("previous", q.Previous))
	}
	if q.Limit > 0 {
		params = append(params, routing.P("limit", strconv.Itoa(q.Limit)))
	}
	return params
}
