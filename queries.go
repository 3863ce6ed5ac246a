package vsts

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/AndyCross/vsts-client-go/internal/api"
)

// WorkItemQuery is a stored work item query, or a query folder when IsFolder
// is set. Children is populated one level deep by lookups.
type WorkItemQuery struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Path        string          `json:"path"`
	Wiql        string          `json:"wiql"`
	IsFolder    bool            `json:"isFolder"`
	HasChildren bool            `json:"hasChildren"`
	Children    []WorkItemQuery `json:"children"`
}

// ListWorkItemQueries returns a project's query tree, one folder level deep.
// The roots are the well-known "My Queries" and "Shared Queries" folders.
func (c *Client) ListWorkItemQueries(ctx context.Context, project string) ([]WorkItemQuery, error) {
	payload, err := c.invoke(ctx, Request{
		Path:    "wit/queries",
		Project: project,
		Query:   map[string]string{"depth": "1"},
	})
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceQuery))
	}

	var roots []WorkItemQuery
	if err := decodeList(payload, &roots); err != nil {
		return nil, fmt.Errorf("decode queries: %w", err)
	}
	return roots, nil
}

// GetWorkItemQuery returns the stored query with the given name under a
// folder such as "Shared Queries". Folder and name match case-insensitively;
// a missing query is reported as ErrQueryNotFound.
func (c *Client) GetWorkItemQuery(ctx context.Context, project, folder, name string) (*WorkItemQuery, error) {
	roots, err := c.ListWorkItemQueries(ctx, project)
	if err != nil {
		return nil, err
	}

	for i := range roots {
		if !strings.EqualFold(roots[i].Name, folder) {
			continue
		}
		for j := range roots[i].Children {
			if strings.EqualFold(roots[i].Children[j].Name, name) {
				return &roots[i].Children[j], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q under %q", ErrQueryNotFound, name, folder)
}

// CreateWorkItemQuery stores a WIQL query under the given folder.
func (c *Client) CreateWorkItemQuery(ctx context.Context, project, folder, name, wiql string) (*WorkItemQuery, error) {
	payload, err := c.invoke(ctx, Request{
		Method:  http.MethodPost,
		Path:    "wit/queries/" + folder,
		Project: project,
		Body:    map[string]string{"name": name, "wiql": wiql},
	})
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceQuery))
	}

	var query WorkItemQuery
	if err := decodeInto(payload, &query); err != nil {
		return nil, fmt.Errorf("decode query: %w", err)
	}
	return &query, nil
}
