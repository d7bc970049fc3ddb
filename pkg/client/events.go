package client

import (
	"context"
	"net/http"

	"github.com/oadr3-protocol/oadr3-go/pkg/model"
)

// ListEvents returns one page of events matching the filter.
func (c *Client) ListEvents(ctx context.Context, filter EventFilter) ([]model.Event, error) {
	var events []model.Event
	err := c.doJSON(ctx, http.MethodGet, c.endpoint("events"), filter.query(), nil, &events)
	return events, err
}

// ListAllEvents walks every page of events matching the filter.
func (c *Client) ListAllEvents(ctx context.Context, filter EventFilter) ([]model.Event, error) {
	return listAll(filter.Page.Limit, func(p Page) ([]model.Event, error) {
		filter.Page = p
		return c.ListEvents(ctx, filter)
	})
}

// GetEvent fetches one event by ID.
func (c *Client) GetEvent(ctx context.Context, id model.ObjectID) (*model.Event, error) {
	var event model.Event
	err := c.doJSON(ctx, http.MethodGet, c.endpoint("events", id.String()), nil, nil, &event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateEvent creates an event and returns the VTN's copy.
func (c *Client) CreateEvent(ctx context.Context, event model.Event) (*model.Event, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}
	var created model.Event
	err := c.doJSON(ctx, http.MethodPost, c.endpoint("events"), nil, event, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEvent replaces an event and returns the VTN's copy.
func (c *Client) UpdateEvent(ctx context.Context, event model.Event) (*model.Event, error) {
	if err := event.ID.Validate(); err != nil {
		return nil, err
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	var updated model.Event
	err := c.doJSON(ctx, http.MethodPut, c.endpoint("events", event.ID.String()), nil, event, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEvent removes an event by ID.
func (c *Client) DeleteEvent(ctx context.Context, id model.ObjectID) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint("events", id.String()), nil, nil, nil)
}
