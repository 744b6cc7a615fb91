package api

import (
	"context"
	"net/http"
)

// SubscriberPlaceholderName is shown for raw-email subscribers that have no account
const SubscriberPlaceholderName = "Subscriber"

// subscriber entry types in the merged view
const (
	SubscriberTypeUser  = "user"
	SubscriberTypeEmail = "subscriber"
)

// Subscriber is one entry of the merged subscriber view. Registered users keep
// their account name; raw-email subscribers get the placeholder name.
type Subscriber struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

// subscriptionCollections mirrors the two collections the backend returns from
// the subscriptions endpoint
type subscriptionCollections struct {
	SubscribedUsers []struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"subscribed_users"`
	SubscribedEmails []struct {
		ID    int    `json:"id"`
		Email string `json:"email"`
	} `json:"subscribed_emails"`
}

func (s subscriptionCollections) merge() []Subscriber {
	merged := make([]Subscriber, 0, len(s.SubscribedUsers)+len(s.SubscribedEmails))

	for _, u := range s.SubscribedUsers {
		merged = append(merged, Subscriber{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Type:  SubscriberTypeUser,
		})
	}
	for _, e := range s.SubscribedEmails {
		merged = append(merged, Subscriber{
			ID:    e.ID,
			Name:  SubscriberPlaceholderName,
			Email: e.Email,
			Type:  SubscriberTypeEmail,
		})
	}

	return merged
}

// SubscribeNewsletter adds an email to the newsletter list (public)
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) (*MessageResponse, error) {
	if email == "" {
		return nil, newValidationError("email is required")
	}

	body := struct {
		Email string `json:"email"`
	}{email}

	var out MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/newsletter/subscribe", body, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnsubscribeNewsletter removes an email from the newsletter list (public)
func (c *Client) UnsubscribeNewsletter(ctx context.Context, email string) (*MessageResponse, error) {
	if email == "" {
		return nil, newValidationError("email is required")
	}

	body := struct {
		Email string `json:"email"`
	}{email}

	var out MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/newsletter/unsubscribe", body, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendNewsletter sends a campaign to every subscriber (admin)
func (c *Client) SendNewsletter(ctx context.Context, subject string, content string) (*MessageResponse, error) {
	if subject == "" || content == "" {
		return nil, newValidationError("subject and content are required")
	}

	body := struct {
		Subject string `json:"subject"`
		Content string `json:"content"`
	}{subject, content}

	var out MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/newsletter/send", body, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Newsletters lists past campaigns (admin)
func (c *Client) Newsletters(ctx context.Context) ([]Newsletter, error) {
	var out NewsletterList
	if err := c.getJSON(ctx, "/newsletters", true, &out); err != nil {
		return nil, err
	}
	return out.Newsletters, nil
}

// NewsletterSubscribers returns the merged subscriber view (admin). The
// backend keeps registered users and raw emails in two collections; they are
// combined here into one shape for display.
func (c *Client) NewsletterSubscribers(ctx context.Context) ([]Subscriber, error) {
	var out subscriptionCollections
	if err := c.getJSON(ctx, "/newsletter/subscriptions", true, &out); err != nil {
		return nil, err
	}
	return out.merge(), nil
}
