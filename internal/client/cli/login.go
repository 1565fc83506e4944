package cli

import (
	"context"
	"errors"
	"fmt"

	"medreport/internal/client/api"
	"medreport/internal/client/services"
)

const loginFallback = "Login failed. Check credentials."

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter your username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer WipeBytes(password)

	if err := a.auth.Login(ctx, username, string(password)); err != nil {
		if errors.Is(err, services.ErrNoAccessToken) {
			fmt.Fprintln(a.out, "Login failed: no token returned")
		} else {
			fmt.Fprintln(a.out, api.ErrorText(err, loginFallback))
		}
		return err
	}

	fmt.Fprintln(a.out, "Login successful. Use 'upload' to submit a report.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
