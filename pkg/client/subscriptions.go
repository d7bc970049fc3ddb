package client

import (
	"context"
	"net/http"

	"github.com/oadr3-protocol/oadr3-go/pkg/model"
)

// ListSubscriptions returns one page of subscriptions matching the filter.
func (c *Client) ListSubscriptions(ctx context.Context, filter SubscriptionFilter) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := c.doJSON(ctx, http.MethodGet, c.endpoint("subscriptions"), filter.query(), nil, &subs)
	return subs, err
}

// ListAllSubscriptions walks every page of subscriptions matching the filter.
func (c *Client) ListAllSubscriptions(ctx context.Context, filter SubscriptionFilter) ([]model.Subscription, error) {
	return listAll(filter.Page.Limit, func(p Page) ([]model.Subscription, error) {
		filter.Page = p
		return c.ListSubscriptions(ctx, filter)
	})
}

// GetSubscription fetches one subscription by ID.
func (c *Client) GetSubscription(ctx context.Context, id model.ObjectID) (*model.Subscription, error) {
	var sub model.Subscription
	err := c.doJSON(ctx, http.MethodGet, c.endpoint("subscriptions", id.String()), nil, nil, &sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// CreateSubscription registers a subscription and returns the VTN's copy.
func (c *Client) CreateSubscription(ctx context.Context, sub model.Subscription) (*model.Subscription, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	var created model.Subscription
	err := c.doJSON(ctx, http.MethodPost, c.endpoint("subscriptions"), nil, sub, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSubscription replaces a subscription and returns the VTN's copy.
func (c *Client) UpdateSubscription(ctx context.Context, sub model.Subscription) (*model.Subscription, error) {
	if err := sub.ID.Validate(); err != nil {
		return nil, err
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	var updated model.Subscription
	err := c.doJSON(ctx, http.MethodPut, c.endpoint("subscriptions", sub.ID.String()), nil, sub, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSubscription removes a subscription by ID.
func (c *Client) DeleteSubscription(ctx context.Context, id model.ObjectID) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint("subscriptions", id.String()), nil, nil, nil)
}
