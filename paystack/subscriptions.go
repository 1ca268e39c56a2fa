package paystack

import (
	"context"
	"time"
)

// SubscriptionsService manages recurring payments on the integration.
// Reference: https://paystack.com/docs/api/subscription/
type SubscriptionsService struct {
	client *Client
}

// Create creates a subscription for a customer on a plan. startDate may be
// nil to start immediately.
func (s *SubscriptionsService) Create(ctx context.Context, customer, planCode, authorization string, startDate *time.Time) (*Response, error) {
	data := Params{
		"customer":      customer,
		"plan":          planCode,
		"authorization": authorization,
		"start_date":    FormatDate(startDate),
	}
	return s.client.Post(ctx, subscriptionEndpoint, data)
}

// List returns one page of subscriptions, optionally restricted to a
// customer or a plan.
func (s *SubscriptionsService) List(ctx context.Context, opts ListOptions, customer, planCode string) (*Response, error) {
	params := opts.Values()
	if customer != "" {
		params["customer"] = customer
	}
	if planCode != "" {
		params["plan"] = planCode
	}
	return s.client.Get(ctx, subscriptionEndpoint, params)
}

// Fetch returns the details of a subscription.
func (s *SubscriptionsService) Fetch(ctx context.Context, idOrCode string) (*Response, error) {
	return s.client.Get(ctx, subscriptionEndpoint+idOrCode, nil)
}

// Enable enables a subscription. token is the customer's email token.
func (s *SubscriptionsService) Enable(ctx context.Context, subscriptionCode, token string) (*Response, error) {
	data := Params{"code": subscriptionCode, "token": token}
	return s.client.Post(ctx, subscriptionEndpoint+"enable", data)
}

// Disable disables a subscription. token is the customer's email token.
func (s *SubscriptionsService) Disable(ctx context.Context, subscriptionCode, token string) (*Response, error) {
	data := Params{"code": subscriptionCode, "token": token}
	return s.client.Post(ctx, subscriptionEndpoint+"disable", data)
}

// GenerateUpdateLink generates a link for updating the card on a
// subscription.
func (s *SubscriptionsService) GenerateUpdateLink(ctx context.Context, subscriptionCode string) (*Response, error) {
	return s.client.Post(ctx, subscriptionEndpoint+subscriptionCode+"/manage/link", nil)
}

// SendUpdateLink emails the customer a link for updating the card on
// their subscription.
func (s *SubscriptionsService) SendUpdateLink(ctx context.Context, subscriptionCode string) (*Response, error) {
	return s.client.Post(ctx, subscriptionEndpoint+subscriptionCode+"/manage/email", nil)
}
