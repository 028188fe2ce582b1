package client

import (
	"context"
	"fmt"

	"github.com/teamkit-io/teamleader/pkg/teamleader"
)

// DirectoryClient implements teamleader.DirectoryClient.
type DirectoryClient struct {
	core *Client
}

// Users implements teamleader.DirectoryClient.Users.
func (c *DirectoryClient) Users(ctx context.Context, showInactive bool) ([]teamleader.Record, error) {
	p := newPayload()
	p.setBool("show_inactive_users", showInactive)

	body, err := c.core.request(ctx, "getUsers", p.values)
	if err != nil {
		return nil, fmt.Errorf("getting users: %w", err)
	}

	return decodeRecords(body)
}

// Departments implements teamleader.DirectoryClient.Departments.
func (c *DirectoryClient) Departments(ctx context.Context) ([]teamleader.Record, error) {
	body, err := c.core.request(ctx, "getDepartments", nil)
	if err != nil {
		return nil, fmt.Errorf("getting departments: %w", err)
	}

	return decodeRecords(body)
}

// Tags implements teamleader.DirectoryClient.Tags.
func (c *DirectoryClient) Tags(ctx context.Context) ([]teamleader.Record, error) {
	body, err := c.core.request(ctx, "getTags", nil)
	if err != nil {
		return nil, fmt.Errorf("getting tags: %w", err)
	}

	return decodeRecords(body)
}

// Segments implements teamleader.DirectoryClient.Segments.
func (c *DirectoryClient) Segments(ctx context.Context, objectType teamleader.ObjectType) ([]teamleader.Record, error) {
	if !objectType.Valid() {
		return nil, &teamleader.InvalidInputError{Argument: "object_type"}
	}

	p := newPayload()
	p.set("object_type", string(objectType))

	body, err := c.core.request(ctx, "getSegments", p.values)
	if err != nil {
		return nil, fmt.Errorf("getting segments: %w", err)
	}

	return decodeRecords(body)
}
