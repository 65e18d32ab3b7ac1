package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pagebound/bookclub/internal/client/services"
)

// getSimpleText, getTextDefault and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getTextDefault = GetTextDefault
var getPassword = GetPassword

// Register prompts for account details and creates an account. A successful
// sign-up establishes the session immediately, like a login.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	displayName, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	confirmation, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	invitation, err := getSimpleText(a.reader, "Invitation token (leave empty if none)", os.Stdout)
	if err != nil {
		return err
	}

	err = a.authService.SignUp(ctx, services.SignUpParams{
		Email:                email,
		Password:             password,
		PasswordConfirmation: confirmation,
		DisplayName:          displayName,
		InvitationToken:      invitation,
	})
	if err != nil {
		return err
	}

	fmt.Println("Welcome! Your account is ready.")
	return nil
}

// Login prompts for credentials and signs in. Invalid credentials come back
// as a plain error; the absent session stays absent.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	if err := a.authService.SignIn(ctx, email, password); err != nil {
		return err
	}

	fmt.Println("Logged in.")
	return nil
}

// ForgotPassword asks the server to email reset instructions.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.authService.RequestPasswordReset(ctx, email)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

// ResetPassword completes the emailed reset flow with the token from the
// instructions mail.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	confirmation, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}

	if err := a.authService.ResetPassword(ctx, token, password, confirmation); err != nil {
		return err
	}

	fmt.Println("Password updated, please log in.")
	return nil
}

// Settings shows the current profile and applies edits. Enter keeps the
// current value.
func (a *App) Settings(ctx context.Context) error {
	sess, ok := a.store.Current()
	if !ok {
		return fmt.Errorf("not logged in")
	}

	email, err := getTextDefault(a.reader, "Email", sess.User.Email, os.Stdout)
	if err != nil {
		return err
	}
	displayName, err := getTextDefault(a.reader, "Display name", sess.User.DisplayName, os.Stdout)
	if err != nil {
		return err
	}

	err = a.authService.UpdateProfile(ctx, services.ProfileParams{
		Email:       email,
		DisplayName: displayName,
	})
	if err != nil {
		return err
	}

	fmt.Println("Settings saved.")
	return nil
}

// Logout revokes the session server-side when possible and always clears it
// locally, along with every open screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.SignOut(ctx); err != nil {
		return err
	}
	a.resetScreens()
	fmt.Println("Logged out.")
	return nil
}
