package vsts

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/AndyCross/vsts-client-go/internal/api"
)

// Field is one work item field assignment, applied in order. Name is the
// field reference name, such as "System.Title".
type Field struct {
	Name  string
	Value any
}

// PatchOperation is a single JSON Patch operation, the wire format of every
// work item write.
type PatchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
	From  string `json:"from,omitempty"`
}

// PatchDocument is an ordered list of patch operations. The order is
// preserved on the wire and the service applies the operations in sequence.
type PatchDocument []PatchOperation

// WorkItem is a tracked unit of work. Fields holds every field the service
// returned, keyed by reference name.
type WorkItem struct {
	ID     int            `json:"id"`
	Rev    int            `json:"rev"`
	Fields map[string]any `json:"fields"`
	URL    string         `json:"url"`
}

// Title returns the System.Title field, or "" when absent.
func (w *WorkItem) Title() string {
	title, _ := w.Fields["System.Title"].(string)
	return title
}

// State returns the System.State field, or "" when absent.
func (w *WorkItem) State() string {
	state, _ := w.Fields["System.State"].(string)
	return state
}

// fieldPatch converts an ordered field list into the JSON Patch document the
// work item endpoints accept.
func fieldPatch(fields []Field) PatchDocument {
	ops := make(PatchDocument, 0, len(fields))
	for _, f := range fields {
		ops = append(ops, PatchOperation{
			Op:    "add",
			Path:  "/fields/" + f.Name,
			Value: f.Value,
		})
	}
	return ops
}

// CreateWorkItem creates a work item of the given type ("Task", "Bug", ...)
// in a project. Creation travels as a JSON Patch document against the
// type-qualified endpoint, with the type name carrying its dollar prefix on
// the wire.
func (c *Client) CreateWorkItem(ctx context.Context, project, workItemType string, fields []Field) (*WorkItem, error) {
	payload, err := c.invoke(ctx, Request{
		Method:  http.MethodPatch,
		Path:    "wit/workitems/$" + workItemType,
		Project: project,
		Body:    fieldPatch(fields),
	})
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceWorkItem))
	}

	var item WorkItem
	if err := decodeInto(payload, &item); err != nil {
		return nil, fmt.Errorf("decode work item: %w", err)
	}
	return &item, nil
}

// GetWorkItems returns the work items with the given ids. Ids are
// collection-unique, so no project scope is needed.
func (c *Client) GetWorkItems(ctx context.Context, ids ...int) ([]WorkItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	joined := make([]string, 0, len(ids))
	for _, id := range ids {
		joined = append(joined, strconv.Itoa(id))
	}

	payload, err := c.invoke(ctx, Request{
		Path:  "wit/workitems",
		Query: map[string]string{"ids": strings.Join(joined, ",")},
	})
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceWorkItem))
	}

	var items []WorkItem
	if err := decodeList(payload, &items); err != nil {
		return nil, fmt.Errorf("decode work items: %w", err)
	}
	return items, nil
}

// GetWorkItem returns a single work item by id.
func (c *Client) GetWorkItem(ctx context.Context, id int) (*WorkItem, error) {
	items, err := c.GetWorkItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrWorkItemNotFound, id)
	}
	return &items[0], nil
}

// UpdateWorkItem applies a JSON Patch document to an existing work item and
// returns the updated item.
func (c *Client) UpdateWorkItem(ctx context.Context, id int, ops PatchDocument) (*WorkItem, error) {
	payload, err := c.invoke(ctx, Request{
		Method: http.MethodPatch,
		Path:   "wit/workitems/" + strconv.Itoa(id),
		Body:   ops,
	})
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceWorkItem))
	}

	var item WorkItem
	if err := decodeInto(payload, &item); err != nil {
		return nil, fmt.Errorf("decode work item: %w", err)
	}
	return &item, nil
}

// SetWorkItemFields applies field assignments to an existing work item, a
// convenience over UpdateWorkItem for the common replace-some-fields case.
func (c *Client) SetWorkItemFields(ctx context.Context, id int, fields []Field) (*WorkItem, error) {
	return c.UpdateWorkItem(ctx, id, fieldPatch(fields))
}
