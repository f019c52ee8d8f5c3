// Package transport carries IPP messages over HTTP: it POSTs the
// binary request body (optionally followed by a streamed document),
// retries once on an authentication challenge, and hands the response
// body back for the caller to decode.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/printkit/ipp"
)

// Credentials carries the user/password pair consumed by HTTP Basic
// or Digest authentication
type Credentials struct {
	User     string
	Password string
}

func (c Credentials) empty() bool { return c.User == "" && c.Password == "" }

// HTTPError reports a non-success HTTP status that the IPP layer above
// should classify (an IPP response is only trustworthy on HTTP 200)
type HTTPError struct {
	Code int
}

func (e *HTTPError) Error() string { return fmt.Sprintf("ipp: http status %d", e.Code) }

// ErrAuthRequired is returned when the server challenges a second time
// after a credentialed retry, or when it challenges with no
// credentials configured
var ErrAuthRequired = fmt.Errorf("ipp: server requires authentication")

// Transport sends IPP requests over HTTP. Create one with New; the zero
// value has no HTTP client and cannot send. Options customize the
// underlying client and logger.
type Transport struct {
	client *http.Client
	log    zerolog.Logger
}

// Option configures a Transport
type Option func(*Transport)

// WithHTTPClient overrides the underlying *http.Client, e.g. to
// configure TLS or a custom dialer
func WithHTTPClient(c *http.Client) Option {
	return func(t *Transport) { t.client = c }
}

// WithLogger attaches a zerolog.Logger; the default is a no-op logger
func WithLogger(log zerolog.Logger) Option {
	return func(t *Transport) { t.log = log }
}

// New creates a Transport ready to send requests
func New(opts ...Option) *Transport {
	t := &Transport{
		client: &http.Client{},
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Exchange posts msg (and, when document is non-nil, its bytes
// immediately following the encoded message) to url, retrying once
// with creds if the server challenges with 401. It decodes and
// returns the IPP response message.
func (t *Transport) Exchange(ctx context.Context, url string, msg *ipp.Message, document io.Reader, creds Credentials) (*ipp.Message, error) {
	encoded, err := msg.EncodeBytes()
	if err != nil {
		return nil, fmt.Errorf("ipp: encoding request: %w", err)
	}

	t.log.Debug().
		Str("op", ipp.Op(msg.Code).String()).
		Uint32("request-id", msg.RequestID).
		Msg("sending ipp request")

	resp, err := t.post(ctx, url, encoded, document, "")
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()

		if creds.empty() {
			return nil, ErrAuthRequired
		}

		challenge := resp.Header.Get("WWW-Authenticate")
		auth, err := authorizationHeader(challenge, creds, http.MethodPost, url)
		if err != nil {
			return nil, fmt.Errorf("ipp: building authorization header: %w", err)
		}

		resp, err = t.post(ctx, url, encoded, document, auth)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusUnauthorized {
			resp.Body.Close()
			return nil, ErrAuthRequired
		}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{Code: resp.StatusCode}
	}

	var respMsg ipp.Message
	if err := respMsg.Decode(resp.Body); err != nil {
		return nil, err
	}

	t.log.Debug().
		Uint32("request-id", respMsg.RequestID).
		Str("status", ipp.Status(respMsg.Code).String()).
		Msg("received ipp response")

	return &respMsg, nil
}

func (t *Transport) post(ctx context.Context, url string, encoded []byte, document io.Reader, auth string) (*http.Response, error) {
	var body io.Reader = bytes.NewReader(encoded)
	contentLength := int64(len(encoded))

	if document != nil {
		body = io.MultiReader(bytes.NewReader(encoded), document)
		contentLength = -1 // unknown: streamed, forces chunked transfer
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("ipp: building request: %w", err)
	}

	if contentLength >= 0 {
		req.ContentLength = contentLength
	}
	req.Header.Set("Content-Type", ipp.ContentType)
	req.Header.Set("Accept", ipp.ContentType)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ipp: http request: %w", err)
	}
	return resp, nil
}
