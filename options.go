package vsts

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

// SourceControl specifies the version control type provisioned for a new
// team project.
type SourceControl string

const (
	// SourceControlGit provisions a Git repository.
	SourceControlGit SourceControl = "Git"
	// SourceControlTfvc provisions Team Foundation Version Control.
	SourceControlTfvc SourceControl = "Tfvc"
)

const (
	defaultPollInterval    = 2 * time.Second
	defaultMaxAttempts     = 30
	defaultProcessTemplate = "Agile"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     hclog.Logger
}

// waitConfig holds configuration for condition polling.
type waitConfig struct {
	pollInterval time.Duration
	maxAttempts  int
}

// projectConfig holds configuration for project creation and deletion.
type projectConfig struct {
	description     string
	processTemplate string
	sourceControl   SourceControl
	wait            bool
	waitOpts        []WaitOption
}

// Option configures the client.
type Option func(*clientConfig)

// SessionOption configures session construction.
type SessionOption func(*Session)

// WaitOption configures condition polling.
type WaitOption func(*waitConfig)

// ProjectOption configures project creation and deletion.
type ProjectOption func(*projectConfig)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-call timeout of the default HTTP client. It is
// ignored when WithHTTPClient supplies a client of its own.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for request and polling debug output.
// Default: a no-op logger
func WithLogger(logger hclog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithCollection sets the project collection addressed by every request.
// Default: "DefaultCollection"
func WithCollection(collection string) SessionOption {
	return func(s *Session) {
		s.collection = collection
	}
}

// WithServer sets the host addressed when the session has no account name,
// which is how on-premises installs are reached. A session with an account
// name always addresses {account}.visualstudio.com and ignores this value.
func WithServer(server string) SessionOption {
	return func(s *Session) {
		s.server = server
	}
}

// WithScheme sets the URI scheme.
// Default: SchemeHTTPS
func WithScheme(scheme Scheme) SessionOption {
	return func(s *Session) {
		s.scheme = scheme
	}
}

// WithPollInterval sets the delay observed before every existence probe,
// including the first.
// Default: 2 seconds
func WithPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.pollInterval = interval
	}
}

// WithMaxAttempts sets the retry budget of a condition poll. The probe runs
// at most maxAttempts+1 times: the initial probe plus one retry per budgeted
// attempt.
// Default: 30
func WithMaxAttempts(maxAttempts int) WaitOption {
	return func(c *waitConfig) {
		c.maxAttempts = maxAttempts
	}
}

// WithDescription sets the description of a created project.
func WithDescription(description string) ProjectOption {
	return func(c *projectConfig) {
		c.description = description
	}
}

// WithProcessTemplate sets the process template of a created project, by
// name ("Agile", "Scrum", "CMMI").
// Default: "Agile"
func WithProcessTemplate(name string) ProjectOption {
	return func(c *projectConfig) {
		c.processTemplate = name
	}
}

// WithSourceControl sets the version control type of a created project.
// Default: SourceControlGit
func WithSourceControl(sourceControl SourceControl) ProjectOption {
	return func(c *projectConfig) {
		c.sourceControl = sourceControl
	}
}

// WithWait makes project creation or deletion block until the change is
// visible, polling with the given wait options.
func WithWait(opts ...WaitOption) ProjectOption {
	return func(c *projectConfig) {
		c.wait = true
		c.waitOpts = opts
	}
}
