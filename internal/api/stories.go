package api

import (
	"context"
	"fmt"
	"net/http"
)

// SuccessStoryParams holds the fields for creating or updating a success story
type SuccessStoryParams struct {
	Title       string
	Description string
	Image       *Upload
}

func (p SuccessStoryParams) validate() *ClientError {
	if p.Title == "" || p.Description == "" {
		return newValidationError("title and description are required")
	}
	return validateImage(p.Image)
}

// SuccessStories lists all success stories
func (c *Client) SuccessStories(ctx context.Context) ([]SuccessStory, error) {
	var out SuccessStoryList
	if err := c.getJSON(ctx, "/success-stories", false, &out); err != nil {
		return nil, err
	}
	return out.SuccessStories, nil
}

// GetSuccessStory fetches a single success story by id
func (c *Client) GetSuccessStory(ctx context.Context, id int) (*SuccessStory, error) {
	var out SuccessStory
	if err := c.getJSON(ctx, fmt.Sprintf("/success-stories/%d", id), false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSuccessStory creates a success story (admin)
func (c *Client) CreateSuccessStory(ctx context.Context, params SuccessStoryParams) (*SuccessStory, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"title":       params.Title,
		"description": params.Description,
	}

	var out SuccessStory

	if params.Image != nil {
		form, err := encodeForm(fields, map[string]*Upload{"image": params.Image})
		if err != nil {
			return nil, err
		}
		if err := c.doForm(ctx, http.MethodPost, "/success-stories", form, true, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}

	body := struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}{params.Title, params.Description}

	if err := c.doJSON(ctx, http.MethodPost, "/success-stories", body, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSuccessStory updates a success story (admin)
func (c *Client) UpdateSuccessStory(ctx context.Context, id int, params SuccessStoryParams) (*SuccessStory, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/success-stories/%d", id)
	var out SuccessStory

	if params.Image != nil {
		form, err := encodeForm(map[string]string{
			"title":       params.Title,
			"description": params.Description,
		}, map[string]*Upload{"image": params.Image})
		if err != nil {
			return nil, err
		}
		if err := c.doForm(ctx, http.MethodPut, path, form, true, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}

	body := struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}{params.Title, params.Description}

	if err := c.doJSON(ctx, http.MethodPut, path, body, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSuccessStory removes a success story (admin)
func (c *Client) DeleteSuccessStory(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/success-stories/%d", id), nil, true, nil)
}
