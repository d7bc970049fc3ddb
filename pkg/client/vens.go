package client

import (
	"context"
	"net/http"

	"github.com/oadr3-protocol/oadr3-go/pkg/model"
)

// ListVens returns one page of VENs matching the filter.
func (c *Client) ListVens(ctx context.Context, filter ListFilter) ([]model.Ven, error) {
	var vens []model.Ven
	err := c.doJSON(ctx, http.MethodGet, c.endpoint("vens"), filter.query(), nil, &vens)
	return vens, err
}

// ListAllVens walks every page of VENs matching the filter.
func (c *Client) ListAllVens(ctx context.Context, filter ListFilter) ([]model.Ven, error) {
	return listAll(filter.Page.Limit, func(p Page) ([]model.Ven, error) {
		filter.Page = p
		return c.ListVens(ctx, filter)
	})
}

// GetVen fetches one VEN by ID.
func (c *Client) GetVen(ctx context.Context, id model.ObjectID) (*model.Ven, error) {
	var ven model.Ven
	err := c.doJSON(ctx, http.MethodGet, c.endpoint("vens", id.String()), nil, nil, &ven)
	if err != nil {
		return nil, err
	}
	return &ven, nil
}

// CreateVen registers a VEN and returns the VTN's copy.
func (c *Client) CreateVen(ctx context.Context, ven model.Ven) (*model.Ven, error) {
	if err := ven.Validate(); err != nil {
		return nil, err
	}
	var created model.Ven
	err := c.doJSON(ctx, http.MethodPost, c.endpoint("vens"), nil, ven, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateVen replaces a VEN and returns the VTN's copy.
func (c *Client) UpdateVen(ctx context.Context, ven model.Ven) (*model.Ven, error) {
	if err := ven.ID.Validate(); err != nil {
		return nil, err
	}
	if err := ven.Validate(); err != nil {
		return nil, err
	}
	var updated model.Ven
	err := c.doJSON(ctx, http.MethodPut, c.endpoint("vens", ven.ID.String()), nil, ven, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteVen removes a VEN by ID.
func (c *Client) DeleteVen(ctx context.Context, id model.ObjectID) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint("vens", id.String()), nil, nil, nil)
}

// ListVenResources returns one page of a VEN's resources.
func (c *Client) ListVenResources(ctx context.Context, venID model.ObjectID, filter ListFilter) ([]model.Resource, error) {
	var resources []model.Resource
	err := c.doJSON(ctx, http.MethodGet, c.endpoint("vens", venID.String(), "resources"), filter.query(), nil, &resources)
	return resources, err
}

// GetVenResource fetches one resource of a VEN.
func (c *Client) GetVenResource(ctx context.Context, venID, resourceID model.ObjectID) (*model.Resource, error) {
	var resource model.Resource
	err := c.doJSON(ctx, http.MethodGet, c.endpoint("vens", venID.String(), "resources", resourceID.String()), nil, nil, &resource)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// CreateVenResource adds a resource under a VEN and returns the VTN's copy.
func (c *Client) CreateVenResource(ctx context.Context, venID model.ObjectID, resource model.Resource) (*model.Resource, error) {
	if err := resource.Validate(); err != nil {
		return nil, err
	}
	var created model.Resource
	err := c.doJSON(ctx, http.MethodPost, c.endpoint("vens", venID.String(), "resources"), nil, resource, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateVenResource replaces a resource under a VEN.
func (c *Client) UpdateVenResource(ctx context.Context, venID model.ObjectID, resource model.Resource) (*model.Resource, error) {
	if err := resource.ID.Validate(); err != nil {
		return nil, err
	}
	if err := resource.Validate(); err != nil {
		return nil, err
	}
	var updated model.Resource
	err := c.doJSON(ctx, http.MethodPut, c.endpoint("vens", venID.String(), "resources", resource.ID.String()), nil, resource, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteVenResource removes a resource from a VEN.
func (c *Client) DeleteVenResource(ctx context.Context, venID, resourceID model.ObjectID) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint("vens", venID.String(), "resources", resourceID.String()), nil, nil, nil)
}
