package client

import (
	"context"
	"net/http"

	"github.com/oadr3-protocol/oadr3-go/pkg/model"
)

// ListPrograms returns one page of programs matching the filter.
func (c *Client) ListPrograms(ctx context.Context, filter ListFilter) ([]model.Program, error) {
	var programs []model.Program
	err := c.doJSON(ctx, http.MethodGet, c.endpoint("programs"), filter.query(), nil, &programs)
	return programs, err
}

// ListAllPrograms walks every page of programs matching the filter.
func (c *Client) ListAllPrograms(ctx context.Context, filter ListFilter) ([]model.Program, error) {
	return listAll(filter.Page.Limit, func(p Page) ([]model.Program, error) {
		filter.Page = p
		return c.ListPrograms(ctx, filter)
	})
}

// GetProgram fetches one program by ID.
func (c *Client) GetProgram(ctx context.Context, id model.ObjectID) (*model.Program, error) {
	var program model.Program
	err := c.doJSON(ctx, http.MethodGet, c.endpoint("programs", id.String()), nil, nil, &program)
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// CreateProgram creates a program and returns the VTN's copy with its
// assigned ID and timestamps.
func (c *Client) CreateProgram(ctx context.Context, program model.Program) (*model.Program, error) {
	if err := program.Validate(); err != nil {
		return nil, err
	}
	var created model.Program
	err := c.doJSON(ctx, http.MethodPost, c.endpoint("programs"), nil, program, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProgram replaces a program and returns the VTN's copy.
func (c *Client) UpdateProgram(ctx context.Context, program model.Program) (*model.Program, error) {
	if err := program.ID.Validate(); err != nil {
		return nil, err
	}
	if err := program.Validate(); err != nil {
		return nil, err
	}
	var updated model.Program
	err := c.doJSON(ctx, http.MethodPut, c.endpoint("programs", program.ID.String()), nil, program, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProgram removes a program by ID.
func (c *Client) DeleteProgram(ctx context.Context, id model.ObjectID) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint("programs", id.String()), nil, nil, nil)
}
