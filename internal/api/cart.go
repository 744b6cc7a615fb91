package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prf-platform/prfweb/internal/session"
)

// CheckoutParams describes a checkout. A plain cart checkout leaves ProjectID
// and Level empty; a VIP subscription checkout names the project and the plan
// level (Basic, Classic or Premium).
type CheckoutParams struct {
	Operator  string `json:"operator"`
	Phone     string `json:"phone"`
	ProjectID int    `json:"project_id,omitempty"`
	Level     string `json:"level,omitempty"`
}

// CheckoutResponse is returned by the checkout endpoint. The reference is
// echoed back on payment confirmation.
type CheckoutResponse struct {
	Reference   string  `json:"reference"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
	Message     string  `json:"message,omitempty"`
}

// PaymentConfirmation is returned by the payment confirm endpoint
type PaymentConfirmation struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

var validSubscriptionLevels = map[string]bool{
	"Basic":   true,
	"Classic": true,
	"Premium": true,
}

// Cart lists the authenticated user's cart
func (c *Client) Cart(ctx context.Context) ([]CartItem, error) {
	var out CartList
	if err := c.getJSON(ctx, "/cart", true, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// AddToCart puts a product in the authenticated user's cart
func (c *Client) AddToCart(ctx context.Context, productID int, quantity int) (*CartItem, error) {
	if quantity < 1 {
		return nil, newValidationError("quantity must be at least 1")
	}

	body := struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}{productID, quantity}

	var out CartItem
	if err := c.doJSON(ctx, http.MethodPost, "/cart", body, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCartItem changes the quantity of a cart entry
func (c *Client) UpdateCartItem(ctx context.Context, itemID int, quantity int) (*CartItem, error) {
	if quantity < 1 {
		return nil, newValidationError("quantity must be at least 1")
	}

	body := struct {
		Quantity int `json:"quantity"`
	}{quantity}

	var out CartItem
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/cart/%d", itemID), body, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveFromCart deletes a cart entry
func (c *Client) RemoveFromCart(ctx context.Context, itemID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", itemID), nil, true, nil)
}

// Checkout starts payment for the cart or for a VIP subscription
func (c *Client) Checkout(ctx context.Context, params CheckoutParams) (*CheckoutResponse, error) {
	if params.Operator == "" || params.Phone == "" {
		return nil, newValidationError("operator and phone are required")
	}
	if params.Level != "" && !validSubscriptionLevels[params.Level] {
		return nil, newValidationError("level must be Basic, Classic or Premium")
	}

	var out CheckoutResponse
	if err := c.doJSON(ctx, http.MethodPost, "/checkout", params, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmPayment confirms a pending payment. The endpoint is public: the
// mobile-money operator's callback flow hits it without a session.
func (c *Client) ConfirmPayment(ctx context.Context, reference string) (*PaymentConfirmation, error) {
	if reference == "" {
		return nil, newValidationError("reference is required")
	}

	body := struct {
		Reference string `json:"reference"`
	}{reference}

	var out PaymentConfirmation
	if err := c.doJSON(ctx, http.MethodPost, "/payment/confirm", body, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Subscribe runs the VIP subscription flow: checkout for the given project and
// level, confirm the payment, then record the subscription locally so the
// expert-directory contact reveal can be unlocked without another round trip.
func (c *Client) Subscribe(ctx context.Context, projectID int, level string, operator string, phone string) (*session.VIPSubscription, error) {
	if !validSubscriptionLevels[level] {
		return nil, newValidationError("level must be Basic, Classic or Premium")
	}

	checkout, err := c.Checkout(ctx, CheckoutParams{
		Operator:  operator,
		Phone:     phone,
		ProjectID: projectID,
		Level:     level,
	})
	if err != nil {
		return nil, err
	}

	confirmation, err := c.ConfirmPayment(ctx, checkout.Reference)
	if err != nil {
		return nil, err
	}

	sub := session.NewVIPSubscription(projectID, level, operator, confirmation.Status)
	if err := c.SetVIPSubscription(sub); err != nil {
		return nil, newInternalError(err, "recording subscription")
	}

	return &sub, nil
}
