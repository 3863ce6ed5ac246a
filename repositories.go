package vsts

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/AndyCross/vsts-client-go/internal/api"
)

// TeamProjectReference identifies the project owning a repository.
type TeamProjectReference struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

// GitRepository is a Git repository hosted by the service.
type GitRepository struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	URL           string               `json:"url"`
	RemoteURL     string               `json:"remoteUrl"`
	DefaultBranch string               `json:"defaultBranch"`
	Project       TeamProjectReference `json:"project"`
}

// ListRepositories returns the Git repositories of a project, or of the
// whole collection when project is empty.
func (c *Client) ListRepositories(ctx context.Context, project string) ([]GitRepository, error) {
	payload, err := c.invoke(ctx, Request{
		Path:    "git/repositories",
		Project: project,
	})
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceRepository))
	}

	var repos []GitRepository
	if err := decodeList(payload, &repos); err != nil {
		return nil, fmt.Errorf("decode repositories: %w", err)
	}
	return repos, nil
}

// GetRepository returns the named repository within a project. The match is
// case-insensitive; a missing repository is reported as
// ErrRepositoryNotFound.
func (c *Client) GetRepository(ctx context.Context, project, name string) (*GitRepository, error) {
	repos, err := c.ListRepositories(ctx, project)
	if err != nil {
		return nil, err
	}

	for i := range repos {
		if strings.EqualFold(repos[i].Name, name) {
			return &repos[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q in project %q", ErrRepositoryNotFound, name, project)
}

// CreateRepository creates an empty Git repository in a project. The project
// name is resolved to its identifier first, so a missing project fails with
// ErrProjectNotFound.
func (c *Client) CreateRepository(ctx context.Context, project, name string) (*GitRepository, error) {
	owner, err := c.GetProject(ctx, project)
	if err != nil {
		return nil, err
	}

	payload, err := c.invoke(ctx, Request{
		Method: http.MethodPost,
		Path:   "git/repositories",
		Body: map[string]any{
			"name": name,
			"project": map[string]string{
				"id": owner.ID.String(),
			},
		},
	})
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceRepository))
	}

	var repo GitRepository
	if err := decodeInto(payload, &repo); err != nil {
		return nil, fmt.Errorf("decode repository: %w", err)
	}
	return &repo, nil
}

// DeleteRepository removes the named repository from a project. The name is
// resolved to its identifier first, so a missing repository fails fast with
// ErrRepositoryNotFound before any delete reaches the service.
func (c *Client) DeleteRepository(ctx context.Context, project, name string) error {
	repo, err := c.GetRepository(ctx, project, name)
	if err != nil {
		return err
	}

	_, err = c.invoke(ctx, Request{
		Method: http.MethodDelete,
		Path:   "git/repositories/" + repo.ID.String(),
	})
	if err != nil {
		return wrapError(api.WithResourceType(err, api.ResourceRepository))
	}
	return nil
}
