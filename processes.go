package vsts

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Process is a process template (Agile, Scrum, CMMI) available in the
// session's collection.
type Process struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsDefault   bool      `json:"isDefault"`
}

// ListProcesses returns the process templates available in the collection.
func (c *Client) ListProcesses(ctx context.Context) ([]Process, error) {
	payload, err := c.invoke(ctx, Request{Path: "process/processes"})
	if err != nil {
		return nil, wrapError(err)
	}

	var processes []Process
	if err := decodeList(payload, &processes); err != nil {
		return nil, fmt.Errorf("decode processes: %w", err)
	}
	return processes, nil
}

// findProcess resolves a template name to its process, case-insensitively.
func (c *Client) findProcess(ctx context.Context, name string) (*Process, error) {
	processes, err := c.ListProcesses(ctx)
	if err != nil {
		return nil, err
	}

	for i := range processes {
		if strings.EqualFold(processes[i].Name, name) {
			return &processes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrProcessNotFound, name)
}
