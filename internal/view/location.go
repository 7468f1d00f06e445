package view

import (
	"net/http"
	"net/url"
)

// Location describes where the visitor is at render time.
// Views receive it by pointer and hand it on; nil means no location is known.
type Location struct {
	Path  string
	Query url.Values
	Hash  string
	State map[string]any
}

// LocationFromRequest builds a Location from an incoming request.
// The fragment is never sent by browsers, so Hash is only set when a client puts it in the URL.
func LocationFromRequest(r *http.Request) *Location {
	return &Location{
		Path:  r.URL.Path,
		Query: r.URL.Query(),
		Hash:  r.URL.Fragment,
	}
}
