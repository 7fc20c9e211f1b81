package cli

import (
	"context"
	"fmt"
)

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error reading email:", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error reading password:", err)
		return
	}

	if err := a.api.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return
	}

	a.userName = email
	fmt.Fprintln(a.out, "Logged in as", email)
}
