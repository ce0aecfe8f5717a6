package response

import (
	"tourbook/internal/usecase/queries"
)

// AuthResponse returns the token in the body as well as the cookie so
// non-browser clients can use the Bearer header.
type AuthResponse struct {
	AccessToken string            `json:"access_token"`
	User        *queries.UserView `json:"user"`
}
