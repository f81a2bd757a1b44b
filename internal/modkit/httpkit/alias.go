// Package httpkit re-exports the platform HTTP helpers modules need, so module
// code does not reach into internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "listingseo/internal/platform/net/http"
	"listingseo/internal/platform/net/http/bind"
)

type (
	// Router is the platform router seam
	Router = phttp.Router

	// Response is what return-style handlers produce
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// Error maps err to its status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Handle adapts a return-style handler
func Handle(h func(*http.Request) Response) Handler { return phttp.Handle(h) }

// URLParam reads a route parameter
func URLParam(r *http.Request, name string) string { return phttp.URLParam(r, name) }

// QueryInt reads an integer query parameter within [lo, hi], def when absent
func QueryInt(r *http.Request, name string, def, lo, hi int) (int, error) {
	return bind.QueryInt(r, name, def, lo, hi)
}

// QueryString reads a trimmed query parameter of at most max bytes
func QueryString(r *http.Request, name string, max int) (string, error) {
	return bind.QueryString(r, name, max)
}
