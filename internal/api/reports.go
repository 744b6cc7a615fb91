package api

import (
	"context"
	"net/url"
)

// report periods accepted by the reports endpoint
const (
	ReportMonthly = "monthly"
	ReportYearly  = "yearly"
	ReportTotal   = "total"
)

var validReportPeriods = map[string]bool{
	ReportMonthly: true,
	ReportYearly:  true,
	ReportTotal:   true,
}

// Report is the activity summary returned by the reports endpoint
type Report struct {
	Type          string  `json:"type"`
	TotalUsers    int     `json:"total_users"`
	TotalOrders   int     `json:"total_orders"`
	TotalProjects int     `json:"total_projects"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// GetReport fetches the activity report for a period (admin).
// period is one of monthly, yearly or total.
func (c *Client) GetReport(ctx context.Context, period string) (*Report, error) {
	if !validReportPeriods[period] {
		return nil, newValidationError("period must be monthly, yearly or total")
	}

	var out Report
	if err := c.getJSON(ctx, "/reports?type="+url.QueryEscape(period), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
