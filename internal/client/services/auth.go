package services

import (
	"context"
	"fmt"

	"medreport/internal/client/session"
	"medreport/internal/logging"
)

// Auth backs the login and signup views.
type Auth struct {
	api   API
	store session.Store
	log   logging.Logger
}

func NewAuth(api API, store session.Store, log logging.Logger) *Auth {
	return &Auth{api: api, store: store, log: log}
}

// Register creates an account. It does not log the new user in; the
// signup view sends them to login afterwards.
func (a *Auth) Register(ctx context.Context, username, email, password string) error {
	if err := a.api.Register(ctx, username, password, email); err != nil {
		a.log.Warn(ctx, "signup failed", "username", username, "err", err)
		return err
	}
	a.log.Info(ctx, "account created", "username", username)
	return nil
}

// Login exchanges credentials for a token pair and persists it. A
// response without an access token is ErrNoAccessToken.
func (a *Auth) Login(ctx context.Context, username, password string) error {
	pair, err := a.api.ExchangeToken(ctx, username, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "username", username, "err", err)
		return err
	}
	if pair.Access == "" {
		return ErrNoAccessToken
	}

	sess := session.Session{AccessToken: pair.Access, RefreshToken: pair.Refresh}
	if err := a.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.log.Info(ctx, "logged in", "username", username)
	return nil
}

// Logout drops the stored token pair. Local only; tokens are not revoked.
func (a *Auth) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}
