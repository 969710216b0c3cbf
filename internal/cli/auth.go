package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/springingstars/schooldash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the local account
// directory. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.gate.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Println("Invalid email or password")
			return nil
		}
		return err
	}

	fmt.Printf("Welcome, %s (%s)\n", sess.DisplayName, sess.Role)
	return nil
}

// Logout removes the session record. Profile, calendar, and report records
// stay in place for the next login.
func (a *App) Logout(ctx context.Context) error {
	if err := a.gate.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func (a *App) whoAmI() error {
	sess, err := a.gate.Current()
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> role=%s\n", sess.DisplayName, sess.Email, sess.Role)
	return nil
}
