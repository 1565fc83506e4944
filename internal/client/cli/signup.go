package cli

import (
	"context"
	"fmt"

	"medreport/internal/client/api"
)

const signupFallback = "Signup failed. Please check your input or try again."

func (a *App) Signup(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter your email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer WipeBytes(password)

	if username == "" || email == "" || len(password) == 0 {
		fmt.Fprintln(a.out, "All fields are required.")
		return nil
	}

	if err := a.auth.Register(ctx, username, email, string(password)); err != nil {
		fmt.Fprintln(a.out, api.ErrorText(err, signupFallback))
		return err
	}

	fmt.Fprintln(a.out, "Signup successful! You can now log in.")
	return nil
}
