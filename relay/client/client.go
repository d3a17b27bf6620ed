// Package client implements the trading-relay HTTP client: the
// authentication-session lifecycle, rate-limited order queries with
// transparent pagination, and order submission.
package client

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/veridex/relaykit/pkg/ratelimit"
	"github.com/veridex/relaykit/relay/types"
)

var log = logrus.WithField("component", "relay")

const (
	defaultRPS     = 5
	defaultTimeout = 30 * time.Second
)

// Credentials is an email/password pair the client may use on its own to
// recover from an expired session. The Name field is sent as-is; the relay
// ignores it on login.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// Options configures a Client.
type Options struct {
	// BaseURL is the relay root, e.g. "https://relay.example.com".
	BaseURL string

	// RPS caps outbound requests per second across all operations of this
	// client. Zero means the default of 5; negative disables the cap.
	RPS int

	// Timeout bounds each HTTP round trip. Zero means 30s.
	Timeout time.Duration

	// Credentials, when set, enable the single implicit re-login performed
	// after a read fails with an expired session. Reads then return
	// ErrSessionExpired instead of the raw status error. When nil, auth
	// failures propagate to the caller untouched.
	Credentials *Credentials
}

// Client talks to one trading relay. All methods are safe for concurrent
// use; the session and the rate limit are shared across them.
type Client struct {
	http    *httpClient
	limiter *ratelimit.Limiter
	creds   *Credentials

	mu      sync.RWMutex
	session types.UserToken
}

// New creates a Client. The session starts anonymous; call Login to attach
// one. Construction never performs network I/O.
func New(opts Options) *Client {
	rps := opts.RPS
	if rps == 0 {
		rps = defaultRPS
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		http:    newHTTPClient(opts.BaseURL, timeout),
		limiter: ratelimit.New(rps),
		creds:   opts.Credentials,
	}
}
