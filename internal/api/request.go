package api

import (
	"net/url"
	"strings"
)

// Scheme selects the URI scheme used to reach the service.
type Scheme string

const (
	SchemeHTTPS Scheme = "https"
	SchemeHTTP  Scheme = "http"
)

const (
	// DefaultCollection is the project collection segment used when a
	// session does not name one.
	DefaultCollection = "DefaultCollection"

	// DefaultServer is the host addressed when a session has no account
	// name and no custom server.
	DefaultServer = "visualstudio.com"

	// DefaultAPIVersion is the service contract version requested when an
	// invocation does not name one.
	DefaultAPIVersion = "1.0"

	// platformDomain is the domain of the hosted service. Account-qualified
	// hosts always live under this domain: a session's Server value applies
	// only when the account name is empty.
	platformDomain = "visualstudio.com"
)

// Session is the addressing and credential context shared by every request
// made against one account. The public package wraps this in an immutable
// type; here it is plain data.
type Session struct {
	AccountName string
	User        string
	Token       string
	Collection  string
	Server      string
	Scheme      Scheme
}

// Request describes a single endpoint invocation.
type Request struct {
	// Method is the HTTP verb. Empty means GET.
	Method string

	// Path is the resource path below the _apis segment, such as "projects"
	// or "git/repositories". Segments are used as given.
	Path string

	// Project scopes the request to a team project when non-empty. The
	// project segment sits between the collection and _apis.
	Project string

	// Query holds caller-supplied query parameters, one value per key. The
	// api-version parameter is owned by the builder and cannot be set here.
	Query map[string]string

	// Body is the request payload, JSON-encoded for verbs that carry one.
	// GET and DELETE requests never send a body, even when one is supplied.
	Body any

	// APIVersion overrides DefaultAPIVersion for endpoints still on a
	// preview contract.
	APIVersion string
}

// BuildURI composes the absolute request URI for r against s.
//
// Host selection: with an account name the host is
// "{account}.visualstudio.com"; the hosted platform domain is fixed and a
// custom Server does not change it. Without an account name the session's
// Server is used verbatim, which is how on-premises installs are reached.
//
// The path is "/{collection}[/{project}]/_apis/{path}". Caller query
// parameters are emitted in sorted key order; api-version is set last, so it
// overrides any caller-supplied value while keeping an earlier position if
// the caller tried to claim the key.
func BuildURI(s Session, r Request) string {
	host := s.Server
	if s.AccountName != "" {
		host = s.AccountName + "." + platformDomain
	}

	segments := make([]string, 0, 4)
	segments = append(segments, s.Collection)
	if r.Project != "" {
		segments = append(segments, r.Project)
	}
	segments = append(segments, "_apis", r.Path)

	version := r.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}

	query := &Params{}
	query.SetAll(r.Query)
	query.Set("api-version", version)

	u := url.URL{
		Scheme:   string(s.Scheme),
		Host:     host,
		Path:     "/" + strings.Join(segments, "/"),
		RawQuery: query.Encode(),
	}
	return u.String()
}
