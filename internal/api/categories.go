package api

import (
	"context"
	"fmt"
	"net/http"
)

// CategoryParams holds the fields for creating or updating a category
type CategoryParams struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Categories lists the shared project/product taxonomy
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out CategoryList
	if err := c.getJSON(ctx, "/categories", false, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// GetCategory fetches a single category by id
func (c *Client) GetCategory(ctx context.Context, id int) (*Category, error) {
	var out Category
	if err := c.getJSON(ctx, fmt.Sprintf("/categories/%d", id), false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCategory creates a category (admin)
func (c *Client) CreateCategory(ctx context.Context, params CategoryParams) (*Category, error) {
	if params.Name == "" {
		return nil, newValidationError("name is required")
	}

	var out Category
	if err := c.doJSON(ctx, http.MethodPost, "/categories", params, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory updates a category (admin)
func (c *Client) UpdateCategory(ctx context.Context, id int, params CategoryParams) (*Category, error) {
	if params.Name == "" {
		return nil, newValidationError("name is required")
	}

	var out Category
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), params, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory removes a category (admin)
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, true, nil)
}
