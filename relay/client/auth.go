package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/veridex/relaykit/relay/types"
)

// Login exchanges credentials for a session token and installs it as the
// client's session. On a non-2xx reply the session is left untouched and
// the error is a *LoginError carrying the status and the relay's message.
func (c *Client) Login(ctx context.Context, email, password string) (types.UserToken, error) {
	return c.login(ctx, "", email, password)
}

// LoginWithName is Login with the account's display name included in the
// payload, matching what the relay's own frontend sends.
func (c *Client) LoginWithName(ctx context.Context, name, email, password string) (types.UserToken, error) {
	return c.login(ctx, name, email, password)
}

func (c *Client) login(ctx context.Context, name, email, password string) (types.UserToken, error) {
	body := types.AuthRequest{Name: name, Email: email, Password: password}

	var tok types.UserToken
	if err := c.http.do(ctx, http.MethodPost, EndpointLogin, &requestOptions{body: body}, &tok); err != nil {
		return types.UserToken{}, asLoginError(err)
	}

	c.setSession(tok)
	log.WithField("userId", tok.UserID).Debug("login succeeded")
	return tok, nil
}

// Signup creates a remote account. It does not log the account in and never
// touches the current session. Failures surface as *LoginError.
func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	body := types.AuthRequest{Name: name, Email: email, Password: password}

	if err := c.http.do(ctx, http.MethodPost, EndpointSignup, &requestOptions{body: body}, nil); err != nil {
		return asLoginError(err)
	}
	return nil
}

// Logout unconditionally drops the session. No network call is involved.
func (c *Client) Logout() {
	c.setSession(types.UserToken{})
}

// HasSession reports whether the client currently holds a logged-in session.
func (c *Client) HasSession() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session.Active()
}

// AuthOpts derives the authorization header pair from the current session.
// It is recomputed on every call and empty while anonymous.
func (c *Client) AuthOpts() types.AuthOpts {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.session.Active() {
		return types.AuthOpts{}
	}
	return types.AuthOpts{
		Authorization: "Bearer " + c.session.Token,
		UserID:        c.session.UserID,
	}
}

// setSession replaces the session wholesale so readers never observe a
// userId/token mix from two different sessions.
func (c *Client) setSession(tok types.UserToken) {
	c.mu.Lock()
	c.session = tok
	c.mu.Unlock()
}

// refreshSession performs the one implicit re-login allowed after an
// expired session. It reports false when no credentials are configured or
// the login itself failed; the caller then propagates the original error.
func (c *Client) refreshSession(ctx context.Context) bool {
	if c.creds == nil {
		return false
	}
	if _, err := c.login(ctx, c.creds.Name, c.creds.Email, c.creds.Password); err != nil {
		log.WithError(err).Warn("session refresh failed")
		return false
	}
	log.Info("session refreshed after auth failure")
	return true
}

func asLoginError(err error) error {
	var se *StatusError
	if errors.As(err, &se) {
		return &LoginError{Status: se.StatusCode, Message: extractMessage(se.Body)}
	}
	return err
}

// extractMessage pulls the {message} field out of an error body, best
// effort: unparseable bodies yield an empty message, not an error.
func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}
