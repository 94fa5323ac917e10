package api

import (
	"fmt"
	"strconv"
)

// --- Code Wiki Methods ---

// ListProjects fetches one page of code-wiki projects. Pages are 1-based.
func (c *Client) ListProjects(page, pageSize int) ([]Project, error) {
	data, err := c.get(buildQuery("/api/wiki/projects", QueryParams{
		"page":      strconv.Itoa(page),
		"page_size": strconv.Itoa(pageSize),
	}))
	if err != nil {
		return nil, err
	}
	return decodeList[Project](data)
}

// CancelGeneration requests cancellation of a non-terminal generation job.
func (c *Client) CancelGeneration(id string) error {
	_, err := c.post(fmt.Sprintf("/api/wiki/generations/%s/cancel", id), nil)
	return err
}
