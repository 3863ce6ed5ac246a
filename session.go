package vsts

import "github.com/AndyCross/vsts-client-go/internal/api"

// Scheme selects how the service is reached.
type Scheme = api.Scheme

const (
	// SchemeHTTPS is the default scheme.
	SchemeHTTPS = api.SchemeHTTPS
	// SchemeHTTP is accepted for on-premises installs without TLS.
	SchemeHTTP = api.SchemeHTTP
)

// DefaultCollection is the project collection addressed when a session does
// not name one.
const DefaultCollection = api.DefaultCollection

// Session bundles the account, credentials and routing configuration shared
// by every call made through a client.
//
// A Session never changes after construction: to address another account or
// collection, build a new one. Sessions are cheap and safe to share between
// goroutines.
type Session struct {
	accountName string
	user        string
	token       string
	collection  string
	server      string
	scheme      Scheme
}

// NewSession returns a session for the given account and credential pair.
//
// accountName selects the hosted account, reached at
// {accountName}.visualstudio.com. Leave it empty to address a server set
// with WithServer instead, the way on-premises installs are reached.
//
// The credential pair is typically a user name and personal access token.
// Credentials are not validated locally: an empty or malformed pair is sent
// as-is and surfaces as ErrAuthenticationFailed from the service.
func NewSession(accountName, user, token string, opts ...SessionOption) *Session {
	s := &Session{
		accountName: accountName,
		user:        user,
		token:       token,
		collection:  api.DefaultCollection,
		server:      api.DefaultServer,
		scheme:      SchemeHTTPS,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AccountName returns the hosted account name, or "" for server addressing.
func (s *Session) AccountName() string {
	return s.accountName
}

// User returns the user half of the credential pair.
func (s *Session) User() string {
	return s.user
}

// Collection returns the project collection addressed by every request.
func (s *Session) Collection() string {
	return s.collection
}

// Server returns the host addressed when no account name is set.
func (s *Session) Server() string {
	return s.server
}

// Scheme returns the URI scheme.
func (s *Session) Scheme() Scheme {
	return s.scheme
}

// wire converts the session to its per-request form.
func (s *Session) wire() api.Session {
	return api.Session{
		AccountName: s.accountName,
		User:        s.user,
		Token:       s.token,
		Collection:  s.collection,
		Server:      s.server,
		Scheme:      s.scheme,
	}
}
