package api

import (
	"context"
	"fmt"
	"net/http"
)

// ServiceProviderParams holds the fields for creating or updating an expert
// listing. The photo makes the request multipart.
type ServiceProviderParams struct {
	Name        string
	Email       string
	Phone       string
	JobTitle    string
	Location    string
	Description string
	Image       *Upload
}

func (p ServiceProviderParams) validate() *ClientError {
	if p.Name == "" || p.Email == "" || p.JobTitle == "" {
		return newValidationError("name, email and job title are required")
	}
	return validateImage(p.Image)
}

func (p ServiceProviderParams) fields() map[string]string {
	return map[string]string{
		"name":        p.Name,
		"email":       p.Email,
		"phone":       p.Phone,
		"job_title":   p.JobTitle,
		"location":    p.Location,
		"description": p.Description,
	}
}

// ReviewParams holds the fields of a public review submission
type ReviewParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ServiceProviders lists the expert directory
func (c *Client) ServiceProviders(ctx context.Context) ([]ServiceProvider, error) {
	var out ServiceProviderList
	if err := c.getJSON(ctx, "/service-providers", false, &out); err != nil {
		return nil, err
	}
	return out.ServiceProviders, nil
}

// GetServiceProvider fetches a single expert by id
func (c *Client) GetServiceProvider(ctx context.Context, id int) (*ServiceProvider, error) {
	var out ServiceProvider
	if err := c.getJSON(ctx, fmt.Sprintf("/service-providers/%d", id), false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateServiceProvider adds an expert to the directory (admin)
func (c *Client) CreateServiceProvider(ctx context.Context, params ServiceProviderParams) (*ServiceProvider, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	form, err := encodeForm(params.fields(), map[string]*Upload{"image": params.Image})
	if err != nil {
		return nil, err
	}

	var out ServiceProvider
	if err := c.doForm(ctx, http.MethodPost, "/service-providers", form, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateServiceProvider updates an expert listing (admin)
func (c *Client) UpdateServiceProvider(ctx context.Context, id int, params ServiceProviderParams) (*ServiceProvider, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	form, err := encodeForm(params.fields(), map[string]*Upload{"image": params.Image})
	if err != nil {
		return nil, err
	}

	var out ServiceProvider
	if err := c.doForm(ctx, http.MethodPut, fmt.Sprintf("/service-providers/%d", id), form, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteServiceProvider removes an expert from the directory (admin)
func (c *Client) DeleteServiceProvider(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/service-providers/%d", id), nil, true, nil)
}

// ServiceProviderReviews lists the public reviews of an expert
func (c *Client) ServiceProviderReviews(ctx context.Context, providerID int) ([]Review, error) {
	var out ReviewList
	if err := c.getJSON(ctx, fmt.Sprintf("/service-providers/%d/reviews", providerID), false, &out); err != nil {
		return nil, err
	}
	return out.Reviews, nil
}

// AddServiceProviderReview submits a public review for an expert
func (c *Client) AddServiceProviderReview(ctx context.Context, providerID int, params ReviewParams) (*Review, error) {
	if params.Name == "" || params.Email == "" {
		return nil, newValidationError("name and email are required")
	}
	if params.Rating < 1 || params.Rating > 5 {
		return nil, newValidationError("rating must be between 1 and 5")
	}

	var out Review
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/service-providers/%d/reviews", providerID), params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AverageRating returns the arithmetic mean of the supplied review ratings,
// or 0 when there are none
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}
	return float64(total) / float64(len(reviews))
}
