package vsts

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/AndyCross/vsts-client-go/internal/api"
)

// policyAPIVersion is the contract version of the policy endpoints, which
// never left preview on this generation of the service.
const policyAPIVersion = "2.0-preview.1"

// MinimumReviewersPolicyType is the well-known identifier of the "minimum
// number of reviewers" policy type.
const MinimumReviewersPolicyType = "fa4e907d-c16b-4a4c-9dfa-4906e5d171dd"

// PolicyTypeReference identifies a policy type.
type PolicyTypeReference struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

// PolicyConfiguration is one configured code policy in a project.
type PolicyConfiguration struct {
	ID         int                 `json:"id"`
	Type       PolicyTypeReference `json:"type"`
	IsEnabled  bool                `json:"isEnabled"`
	IsBlocking bool                `json:"isBlocking"`
	IsDeleted  bool                `json:"isDeleted"`
	Settings   map[string]any      `json:"settings"`
}

// MinimumReviewerPolicy describes a minimum-number-of-reviewers policy
// scoped to one repository branch.
type MinimumReviewerPolicy struct {
	// RepositoryID scopes the policy to a repository.
	RepositoryID uuid.UUID
	// RefName is the protected ref, such as "refs/heads/master".
	RefName string
	// MatchKind is "exact" or "prefix". Empty means "exact".
	MatchKind string
	// MinimumApproverCount is the number of approvals required.
	MinimumApproverCount int
	// CreatorVoteCounts lets the pull request author's vote count toward
	// the minimum.
	CreatorVoteCounts bool
	// Blocking makes the policy block completion instead of warning.
	Blocking bool
}

// GetCodePolicies returns the policy configurations of a project.
func (c *Client) GetCodePolicies(ctx context.Context, project string) ([]PolicyConfiguration, error) {
	payload, err := c.invoke(ctx, Request{
		Path:       "policy/configurations",
		Project:    project,
		APIVersion: policyAPIVersion,
	})
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceProject))
	}

	var policies []PolicyConfiguration
	if err := decodeList(payload, &policies); err != nil {
		return nil, fmt.Errorf("decode policies: %w", err)
	}
	return policies, nil
}

// CreateCodePolicy configures a minimum-reviewer policy in a project.
func (c *Client) CreateCodePolicy(ctx context.Context, project string, policy MinimumReviewerPolicy) (*PolicyConfiguration, error) {
	matchKind := policy.MatchKind
	if matchKind == "" {
		matchKind = "exact"
	}

	body := map[string]any{
		"isEnabled":  true,
		"isBlocking": policy.Blocking,
		"type": map[string]string{
			"id": MinimumReviewersPolicyType,
		},
		"settings": map[string]any{
			"minimumApproverCount": policy.MinimumApproverCount,
			"creatorVoteCounts":    policy.CreatorVoteCounts,
			"scope": []map[string]any{
				{
					"repositoryId": policy.RepositoryID.String(),
					"refName":      policy.RefName,
					"matchKind":    matchKind,
				},
			},
		},
	}

	payload, err := c.invoke(ctx, Request{
		Method:     http.MethodPost,
		Path:       "policy/configurations",
		Project:    project,
		Body:       body,
		APIVersion: policyAPIVersion,
	})
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceProject))
	}

	var created PolicyConfiguration
	if err := decodeInto(payload, &created); err != nil {
		return nil, fmt.Errorf("decode policy: %w", err)
	}
	return &created, nil
}
