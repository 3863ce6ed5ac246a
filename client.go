package vsts

import (
	"context"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/mapstructure"

	"github.com/AndyCross/vsts-client-go/internal/api"
)

// Request describes a single endpoint invocation for Invoke. Method defaults
// to GET; Path is the resource path below the _apis segment; Project scopes
// the call to a team project; Query holds extra query parameters (api-version
// is always managed by the client); Body is the JSON payload for verbs that
// carry one.
type Request = api.Request

// Client issues authenticated calls against one session's account.
//
// The client is stateless beyond its session and transport: it is safe for
// concurrent use, and several clients with distinct sessions can coexist in
// one process.
type Client struct {
	session   *Session
	apiClient *api.Client
	logger    hclog.Logger
}

// New creates a client from an existing session.
//
// Construction is local: no call is made to the service, so invalid
// credentials surface on the first invocation rather than here.
func New(session *Session, opts ...Option) (*Client, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	cfg := &clientConfig{
		timeout: api.DefaultTimeout,
		logger:  hclog.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	return &Client{
		session:   session,
		apiClient: api.NewClient(httpClient, cfg.logger),
		logger:    cfg.logger,
	}, nil
}

// NewFromCredentials builds a default session for the given account and
// credential pair and wraps it in a client. Use New with NewSession when the
// collection, server or scheme need adjusting.
func NewFromCredentials(accountName, user, token string, opts ...Option) (*Client, error) {
	return New(NewSession(accountName, user, token), opts...)
}

// Session returns the session the client was built from.
func (c *Client) Session() *Session {
	return c.session
}

// Invoke performs a single authenticated call against the session's account
// and returns the decoded response payload, or nil for an empty response.
//
// Invoke is the building block underneath every typed operation, exposed for
// endpoints the typed surface does not cover. It performs exactly one HTTP
// call: no retries, no polling.
func (c *Client) Invoke(ctx context.Context, r Request) (map[string]any, error) {
	payload, err := c.invoke(ctx, r)
	if err != nil {
		return nil, wrapError(err)
	}
	return payload, nil
}

// invoke performs the call without public error wrapping, so typed
// operations can tag errors with their resource kind first.
func (c *Client) invoke(ctx context.Context, r Request) (map[string]any, error) {
	return c.apiClient.Do(ctx, c.session.wire(), r)
}

// decodeInto projects a raw payload fragment into a typed struct. Field
// names follow the wire's json names; GUID fields decode from their string
// form.
func decodeInto(raw any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
		Result:     out,
		TagName:    "json",
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// decodeList projects the standard {count, value} list envelope into a typed
// slice.
func decodeList(payload map[string]any, out any) error {
	if payload == nil {
		return nil
	}
	return decodeInto(payload["value"], out)
}
