package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// ProjectParams holds the fields for creating or updating a project. When
// Image is set the request goes out as multipart/form-data, otherwise JSON.
type ProjectParams struct {
	Name         string
	Description  string
	IsFree       bool
	BasicPrice   float64
	ClassicPrice float64
	PremiumPrice float64
	CategoryID   int
	Image        *Upload
}

func (p ProjectParams) validate() *ClientError {
	if p.Name == "" || p.Description == "" {
		return newValidationError("name and description are required")
	}
	if !p.IsFree && (p.BasicPrice <= 0 || p.ClassicPrice <= 0 || p.PremiumPrice <= 0) {
		return newValidationError("basic, classic and premium prices are required for paid projects")
	}
	return validateImage(p.Image)
}

func (p ProjectParams) fields() map[string]string {
	return map[string]string{
		"name":          p.Name,
		"description":   p.Description,
		"is_free":       strconv.FormatBool(p.IsFree),
		"basic_price":   strconv.FormatFloat(p.BasicPrice, 'f', -1, 64),
		"classic_price": strconv.FormatFloat(p.ClassicPrice, 'f', -1, 64),
		"premium_price": strconv.FormatFloat(p.PremiumPrice, 'f', -1, 64),
		"category_id":   strconv.Itoa(p.CategoryID),
	}
}

func (p ProjectParams) jsonBody() any {
	return struct {
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		IsFree       bool    `json:"is_free"`
		BasicPrice   float64 `json:"basic_price"`
		ClassicPrice float64 `json:"classic_price"`
		PremiumPrice float64 `json:"premium_price"`
		CategoryID   int     `json:"category_id"`
	}{p.Name, p.Description, p.IsFree, p.BasicPrice, p.ClassicPrice, p.PremiumPrice, p.CategoryID}
}

// Projects lists all projects
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var out ProjectList
	if err := c.getJSON(ctx, "/projects", false, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

// Project fetches a single project by id
func (c *Client) Project(ctx context.Context, id int) (*Project, error) {
	var out Project
	if err := c.getJSON(ctx, fmt.Sprintf("/projects/%d", id), false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject creates a project (admin)
func (c *Client) CreateProject(ctx context.Context, params ProjectParams) (*Project, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	var out Project

	if params.Image != nil {
		form, err := encodeForm(params.fields(), map[string]*Upload{"image": params.Image})
		if err != nil {
			return nil, err
		}
		if err := c.doForm(ctx, http.MethodPost, "/projects", form, true, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}

	if err := c.doJSON(ctx, http.MethodPost, "/projects", params.jsonBody(), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject updates a project (admin)
func (c *Client) UpdateProject(ctx context.Context, id int, params ProjectParams) (*Project, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/projects/%d", id)
	var out Project

	if params.Image != nil {
		form, err := encodeForm(params.fields(), map[string]*Upload{"image": params.Image})
		if err != nil {
			return nil, err
		}
		if err := c.doForm(ctx, http.MethodPut, path, form, true, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}

	if err := c.doJSON(ctx, http.MethodPut, path, params.jsonBody(), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject removes a project (admin)
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, true, nil)
}
