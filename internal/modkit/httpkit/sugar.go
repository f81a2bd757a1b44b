package httpkit

import (
	"net/http"

	phttp "listingseo/internal/platform/net/http"
)

// Get mounts a body-less JSON handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) { phttp.GetJSON(r, path, h) }

// PostJSON mounts a JSON handler under POST answering 200
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// CreateJSON mounts a JSON handler under POST answering 201
func CreateJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.CreateJSON(r, path, h)
}
