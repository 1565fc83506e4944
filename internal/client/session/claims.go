package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the client can read out of an access token without
// verifying it: enough to decorate the prompt, nothing more. The client
// deliberately has no expiry handling; tokens are sent as-is and the
// server is the judge.
type Claims struct {
	UserID    int64
	ExpiresAt time.Time
}

// PeekClaims decodes the access token payload without any signature
// check. Returns false for anything that does not parse as a JWT.
func PeekClaims(accessToken string) (Claims, bool) {
	if accessToken == "" {
		return Claims{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return Claims{}, false
	}

	var out Claims
	if id, ok := claims["user_id"].(float64); ok {
		out.UserID = int64(id)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, true
}
