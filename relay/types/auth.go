package types

import "strconv"

// UserToken is the relay session: a user id and its bearer token.
// UserID == 0 means anonymous.
type UserToken struct {
	UserID int64  `json:"userId"`
	Token  string `json:"token"`
}

// Active reports whether the token represents a logged-in session.
func (t UserToken) Active() bool {
	return t.UserID != 0
}

// AuthOpts is the authorization header pair derived from a session. It is
// recomputed per request and never cached.
type AuthOpts struct {
	Authorization string
	UserID        int64
}

// Headers renders the pair as HTTP headers, or nil when anonymous.
func (a AuthOpts) Headers() map[string]string {
	if a.UserID == 0 {
		return nil
	}
	return map[string]string{
		"Authorization": a.Authorization,
		"X-User-Id":     strconv.FormatInt(a.UserID, 10),
	}
}

// AuthRequest is the body of both /login and /signup.
type AuthRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
