package services

import (
	"context"
	"fmt"

	"github.com/pagebound/bookclub/internal/client/api"
	"github.com/pagebound/bookclub/internal/client/models"
	"github.com/pagebound/bookclub/internal/logging"
)

// SessionStore is the write side of the session store used by the auth
// flows; nothing else may establish or clear sessions except the gateway's
// own 401 handler.
type SessionStore interface {
	SessionReader
	Establish(ctx context.Context, token string, user models.User) error
	UpdateUser(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

// SignUpParams are the account-creation fields. InvitationToken is present
// when the account is created from a club invitation link.
type SignUpParams struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	DisplayName          string `json:"display_name"`
	InvitationToken      string `json:"-"`
}

// ProfileParams are the updatable account-settings fields. Zero values are
// omitted so partial updates stay partial.
type ProfileParams struct {
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// AuthService owns the account lifecycle: the only flows allowed to write
// the session store.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, params SignUpParams) error
	SignOut(ctx context.Context) error
	UpdateProfile(ctx context.Context, params ProfileParams) error
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, resetToken, password, confirmation string) error
}

type authService struct {
	gw    Gateway
	store SessionStore
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the gateway and the
// session store.
func NewAuthService(gw Gateway, store SessionStore, log logging.Logger) AuthService {
	return &authService{gw: gw, store: store, log: log}
}

// signInResponse is the non-enveloped body of the sign-in and sign-up
// endpoints.
type signInResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// SignIn authenticates and establishes the session pair. A 401 here comes
// back as api.ErrInvalidCredentials with the store untouched; the gateway
// guarantees that branch.
func (a *authService) SignIn(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}

	var resp signInResponse
	if err := a.gw.Post(ctx, "/users/sign_in", body, &resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return fmt.Errorf("sign-in response carried no token")
	}

	if err := a.store.Establish(ctx, resp.Token, resp.User); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	a.log.Info(ctx, "signed in", "user", resp.User.Email)
	return nil
}

// SignUp creates an account and establishes the returned session, exactly
// like a successful sign-in.
func (a *authService) SignUp(ctx context.Context, params SignUpParams) error {
	body := map[string]any{"user": params}
	if params.InvitationToken != "" {
		body["invitation_token"] = params.InvitationToken
	}

	var resp signInResponse
	if err := a.gw.Post(ctx, "/users", body, &resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return fmt.Errorf("sign-up response carried no token")
	}

	if err := a.store.Establish(ctx, resp.Token, resp.User); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	a.log.Info(ctx, "account created", "user", resp.User.Email)
	return nil
}

// SignOut tells the server, then clears the local session regardless of
// what the server said: a failed revocation must not leave the client
// logged in.
func (a *authService) SignOut(ctx context.Context) error {
	if err := a.gw.Delete(ctx, "/users/sign_out", nil); err != nil {
		a.log.Warn(ctx, "sign-out request failed, clearing local session anyway", "error", err)
	}
	return a.store.Clear(ctx)
}

// UpdateProfile patches the account and refreshes the stored profile. The
// token is left alone; only the user half of the pair changes, which keeps
// the pair complete.
func (a *authService) UpdateProfile(ctx context.Context, params ProfileParams) error {
	userID, err := currentUserID(a.store)
	if err != nil {
		return err
	}

	var env api.Envelope
	if err := a.gw.Patch(ctx, "/users/"+userID.String(), map[string]any{"user": params}, &env); err != nil {
		return err
	}

	var user models.User
	if err := env.Data.Decode(&user); err != nil {
		return err
	}
	if user.ID == 0 {
		user.ID = env.Data.ID
	}
	return a.store.UpdateUser(ctx, user)
}

// RequestPasswordReset asks the server to send reset instructions and
// returns the server's confirmation message.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := a.gw.Post(ctx, "/users/password", map[string]string{"email": email}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ResetPassword completes the emailed reset flow. Any session lying around
// is cleared afterwards so the user signs in fresh with the new password.
func (a *authService) ResetPassword(ctx context.Context, resetToken, password, confirmation string) error {
	body := map[string]string{
		"reset_password_token":  resetToken,
		"password":              password,
		"password_confirmation": confirmation,
	}
	if err := a.gw.Put(ctx, "/users/password", body, nil); err != nil {
		return err
	}
	return a.store.Clear(ctx)
}
