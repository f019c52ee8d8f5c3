package cups

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/printkit/ipp/transport"
)

// Client is a CUPS/IPP client bound to a single server URL.
type Client struct {
	url         string
	defaultUser string
	credentials Credentials

	httpOpts  []transport.Option
	transport *transport.Transport
	requestID requestIDCounter
}

// Option configures a Client
type Option func(*Client)

// WithCredentials sets the HTTP Basic/Digest credentials used when the
// server challenges a request
func WithCredentials(creds Credentials) Option {
	return func(c *Client) { c.credentials = creds }
}

// WithDefaultUser sets the requesting-user-name used when an operation
// doesn't supply one of its own
func WithDefaultUser(user string) Option {
	return func(c *Client) { c.defaultUser = user }
}

// WithHTTPClient overrides the underlying *http.Client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpOpts = append(c.httpOpts, transport.WithHTTPClient(h)) }
}

// WithLogger attaches a zerolog.Logger to the client's transport; the
// default is a no-op logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.httpOpts = append(c.httpOpts, transport.WithLogger(log)) }
}

// New creates a Client targeting the given IPP/CUPS server URL, e.g.
// "http://localhost:631/".
func New(url string, opts ...Option) *Client {
	c := &Client{url: url, defaultUser: currentUser()}
	for _, opt := range opts {
		opt(c)
	}
	c.transport = transport.New(c.httpOpts...)
	return c
}

// NewFromConfig builds a Client from a loaded Config, applying opts
// after the config-derived options so callers can still override them.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	base := []Option{
		WithDefaultUser(cfg.DefaultUser),
	}
	if cfg.User != "" || cfg.Password != "" {
		base = append(base, WithCredentials(Credentials{User: cfg.User, Password: cfg.Password}))
	}
	return New(cfg.URL(), append(base, opts...)...)
}

func (c *Client) creds() transport.Credentials {
	return transport.Credentials{User: c.credentials.User, Password: c.credentials.Password}
}
