package client

import (
	"context"
	"net/http"

	"github.com/oadr3-protocol/oadr3-go/pkg/model"
)

// ListReports returns one page of reports matching the filter.
func (c *Client) ListReports(ctx context.Context, filter ReportFilter) ([]model.Report, error) {
	var reports []model.Report
	err := c.doJSON(ctx, http.MethodGet, c.endpoint("reports"), filter.query(), nil, &reports)
	return reports, err
}

// ListAllReports walks every page of reports matching the filter.
func (c *Client) ListAllReports(ctx context.Context, filter ReportFilter) ([]model.Report, error) {
	return listAll(filter.Page.Limit, func(p Page) ([]model.Report, error) {
		filter.Page = p
		return c.ListReports(ctx, filter)
	})
}

// GetReport fetches one report by ID.
func (c *Client) GetReport(ctx context.Context, id model.ObjectID) (*model.Report, error) {
	var report model.Report
	err := c.doJSON(ctx, http.MethodGet, c.endpoint("reports", id.String()), nil, nil, &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// CreateReport submits a report and returns the VTN's copy.
func (c *Client) CreateReport(ctx context.Context, report model.Report) (*model.Report, error) {
	if err := report.Validate(); err != nil {
		return nil, err
	}
	var created model.Report
	err := c.doJSON(ctx, http.MethodPost, c.endpoint("reports"), nil, report, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReport replaces a report and returns the VTN's copy.
func (c *Client) UpdateReport(ctx context.Context, report model.Report) (*model.Report, error) {
	if err := report.ID.Validate(); err != nil {
		return nil, err
	}
	if err := report.Validate(); err != nil {
		return nil, err
	}
	var updated model.Report
	err := c.doJSON(ctx, http.MethodPut, c.endpoint("reports", report.ID.String()), nil, report, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteReport removes a report by ID.
func (c *Client) DeleteReport(ctx context.Context, id model.ObjectID) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint("reports", id.String()), nil, nil, nil)
}
