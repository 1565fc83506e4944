// Package session persists the access/refresh token pair, the only state
// the client keeps between runs. Every view reads the same store; an
// absent access token means "anonymous" and views degrade to a signed-out
// state rather than fail.
package session

import "context"

// Storage keys. Fixed names, one value each.
const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// Session is the client's proof of authentication. Refresh may be empty;
// it is stored when the server hands one out but never used to
// re-authenticate.
type Session struct {
	AccessToken  string
	RefreshToken string
}

// Anonymous reports whether there is no usable session.
func (s Session) Anonymous() bool {
	return s.AccessToken == ""
}

// Store loads and saves the token pair.
type Store interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}
