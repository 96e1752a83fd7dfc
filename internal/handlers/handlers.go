package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// errorResponse is the JSON error body shared by all endpoints
// swagger:model errorResponse
type errorResponse struct {
	// Error message
	// example: petition not found
	Error string `json:"error"`
}

var errBadID = errors.New("invalid id format")

// pathID parses a numeric path parameter. Malformed values are a client
// error, never a silent zero.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, errBadID
	}
	return id, nil
}
