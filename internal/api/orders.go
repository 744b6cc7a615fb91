package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Orders lists the authenticated user's orders
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var out OrderList
	if err := c.getJSON(ctx, "/orders", true, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// GetOrder fetches a single order by id
func (c *Client) GetOrder(ctx context.Context, id int) (*Order, error) {
	var out Order
	if err := c.getJSON(ctx, fmt.Sprintf("/orders/%d", id), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminOrders lists every order on the platform (admin)
func (c *Client) AdminOrders(ctx context.Context) ([]Order, error) {
	var out OrderList
	if err := c.getJSON(ctx, "/orders/admin", true, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// UpdateOrderStatus sets an order's status (admin)
func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status string) (*Order, error) {
	if status == "" {
		return nil, newValidationError("status is required")
	}

	body := struct {
		Status string `json:"status"`
	}{status}

	var out Order
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), body, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HasStatus compares the order status case-insensitively. The backend stores
// free-form status strings so "Pending" and "pending" are the same state.
func (o Order) HasStatus(status string) bool {
	return strings.EqualFold(strings.TrimSpace(o.Status), strings.TrimSpace(status))
}
