package auth

import "net/http"

type Client interface {
	// Auth authenticates the current user, returns the user id.
	Auth(r *http.Request) (string, error)
}
