package utils

import (
	"net/http"
	"net/url"

	"github.com/openshelf/catalog/models"
)

// AbsoluteLinks resolves every relative path in links against the given base
// URL (scheme://host) and returns a new map. The input map is not modified.
// Unparseable paths are passed through unchanged.
func AbsoluteLinks(links models.Links, base string) models.Links {
	if len(links) == 0 {
		return links
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return links
	}

	out := make(models.Links, len(links))
	for key, path := range links {
		ref, err := url.Parse(path)
		if err != nil {
			out[key] = path
			continue
		}
		out[key] = baseURL.ResolveReference(ref).String()
	}

	return out
}

// BaseURLFromRequest reconstructs the external base URL (scheme://host) of
// the incoming request for use with AbsoluteLinks. TLS is detected from the
// request; proxies terminating TLS should rewrite the Host header upstream.
func BaseURLFromRequest(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
