package api

import (
	"context"
	"fmt"
	"net/http"
)

var validRoles = map[string]bool{
	"user":  true,
	"admin": true,
}

// Users lists every registered account (admin)
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var out UserList
	if err := c.getJSON(ctx, "/users", true, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// GetUser fetches a single account (admin)
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var out User
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d", id), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUserRole changes an account's role (admin)
func (c *Client) UpdateUserRole(ctx context.Context, id int, role string) (*User, error) {
	if !validRoles[role] {
		return nil, newValidationError("role must be user or admin")
	}

	body := struct {
		Role string `json:"role"`
	}{role}

	var out User
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d/type", id), body, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
