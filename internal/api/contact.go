package api

import (
	"context"
	"fmt"
	"net/http"
)

// contact request types - a closed enum used for label/colour lookups in lists
const (
	RequestTypeInformation = "information"
	RequestTypePartnership = "partnership"
	RequestTypeSupport     = "support"
	RequestTypeComplaint   = "complaint"
	RequestTypeOther       = "other"
)

type requestTypeInfo struct {
	Label string
	Color string
}

var requestTypes = map[string]requestTypeInfo{
	RequestTypeInformation: {Label: "Information", Color: "blue"},
	RequestTypePartnership: {Label: "Partnership", Color: "green"},
	RequestTypeSupport:     {Label: "Support", Color: "orange"},
	RequestTypeComplaint:   {Label: "Complaint", Color: "red"},
	RequestTypeOther:       {Label: "Other", Color: "gray"},
}

// RequestTypeLabel returns the display label for a contact request type,
// falling back to the raw value for unknown types
func RequestTypeLabel(requestType string) string {
	if info, ok := requestTypes[requestType]; ok {
		return info.Label
	}
	return requestType
}

// RequestTypeColor returns the badge colour for a contact request type
func RequestTypeColor(requestType string) string {
	if info, ok := requestTypes[requestType]; ok {
		return info.Color
	}
	return "gray"
}

// ContactParams holds the fields of a contact form submission
type ContactParams struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	RequestType string `json:"request_type"`
	Object      string `json:"object"`
	Message     string `json:"message"`
}

// SubmitContact sends a contact form message (public)
func (c *Client) SubmitContact(ctx context.Context, params ContactParams) (*Contact, error) {
	if params.Name == "" || params.Email == "" || params.Message == "" {
		return nil, newValidationError("name, email and message are required")
	}
	if _, ok := requestTypes[params.RequestType]; !ok {
		return nil, newValidationError("unknown request type")
	}

	var out Contact
	if err := c.doJSON(ctx, http.MethodPost, "/contact", params, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Contacts lists submitted contact messages (admin)
func (c *Client) Contacts(ctx context.Context) ([]Contact, error) {
	var out ContactList
	if err := c.getJSON(ctx, "/contact", true, &out); err != nil {
		return nil, err
	}
	return out.Contacts, nil
}

// GetContact fetches a single contact message (admin)
func (c *Client) GetContact(ctx context.Context, id int) (*Contact, error) {
	var out Contact
	if err := c.getJSON(ctx, fmt.Sprintf("/contact/%d", id), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContact removes a contact message (admin)
func (c *Client) DeleteContact(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/contact/%d", id), nil, true, nil)
}
