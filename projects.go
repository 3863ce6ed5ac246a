package vsts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/AndyCross/vsts-client-go/internal/api"
)

// TeamProject is a team project within the session's collection.
type TeamProject struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	State       string    `json:"state"`
	Revision    int       `json:"revision"`
}

// OperationReference tracks a queued server-side operation, such as project
// creation or deletion. The service reports these as accepted long before
// the change is visible; use WithWait or WaitForProject to block on the
// outcome.
type OperationReference struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
	URL    string    `json:"url"`
}

// ListProjects returns the team projects in the session's collection.
func (c *Client) ListProjects(ctx context.Context) ([]TeamProject, error) {
	payload, err := c.invoke(ctx, Request{Path: "projects"})
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceProject))
	}

	var projects []TeamProject
	if err := decodeList(payload, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}

// GetProject returns the team project with the given name. The match is
// case-insensitive, the way the service itself treats project names. A
// missing project is reported as ErrProjectNotFound.
func (c *Client) GetProject(ctx context.Context, name string) (*TeamProject, error) {
	projects, err := c.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if strings.EqualFold(projects[i].Name, name) {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrProjectNotFound, name)
}

// CreateProject asks the service to provision a new team project and returns
// the reference of the queued operation. Provisioning is asynchronous: the
// project is not usable when CreateProject returns unless WithWait was given.
func (c *Client) CreateProject(ctx context.Context, name string, opts ...ProjectOption) (*OperationReference, error) {
	cfg := &projectConfig{
		processTemplate: defaultProcessTemplate,
		sourceControl:   SourceControlGit,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	template, err := c.findProcess(ctx, cfg.processTemplate)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"name":        name,
		"description": cfg.description,
		"capabilities": map[string]any{
			"versioncontrol": map[string]any{
				"sourceControlType": string(cfg.sourceControl),
			},
			"processTemplate": map[string]any{
				"templateTypeId": template.ID.String(),
			},
		},
	}

	payload, err := c.invoke(ctx, Request{
		Method: http.MethodPost,
		Path:   "projects",
		Body:   body,
	})
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceProject))
	}

	var op OperationReference
	if err := decodeInto(payload, &op); err != nil {
		return nil, fmt.Errorf("decode operation reference: %w", err)
	}

	if cfg.wait {
		if err := c.WaitForProject(ctx, name, true, cfg.waitOpts...); err != nil {
			return nil, err
		}
	}
	return &op, nil
}

// DeleteProject removes the team project with the given name. The name is
// resolved to its identifier first, so a missing project fails fast with
// ErrProjectNotFound before any delete reaches the service. Deletion is
// asynchronous unless WithWait was given.
func (c *Client) DeleteProject(ctx context.Context, name string, opts ...ProjectOption) error {
	cfg := &projectConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	project, err := c.GetProject(ctx, name)
	if err != nil {
		return err
	}

	_, err = c.invoke(ctx, Request{
		Method: http.MethodDelete,
		Path:   "projects/" + project.ID.String(),
	})
	if err != nil {
		return wrapError(api.WithResourceType(err, api.ResourceProject))
	}

	if cfg.wait {
		return c.WaitForProject(ctx, name, false, cfg.waitOpts...)
	}
	return nil
}

// WaitForProject polls until the named project exists (wantPresent true) or
// is gone (wantPresent false). Probe errors other than the project being
// missing abort the wait.
func (c *Client) WaitForProject(ctx context.Context, name string, wantPresent bool, opts ...WaitOption) error {
	condition := fmt.Sprintf("project %q to exist", name)
	if !wantPresent {
		condition = fmt.Sprintf("project %q to be gone", name)
	}

	return c.WaitFor(ctx, condition, wantPresent, func(ctx context.Context) (bool, error) {
		_, err := c.GetProject(ctx, name)
		if err == nil {
			return true, nil
		}
		if errors.Is(err, ErrProjectNotFound) {
			return false, nil
		}
		return false, err
	}, opts...)
}
