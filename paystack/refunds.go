package paystack

import "context"

// RefundsService creates and inspects transaction refunds.
// Reference: https://paystack.com/docs/api/refund/
type RefundsService struct {
	client *Client
}

// Create refunds a transaction. amount may be nil to refund the full
// transaction amount; currency may be empty.
func (s *RefundsService) Create(ctx context.Context, transactionRefOrID string, amount *int64, currency Currency, customerNote, merchantNote string) (*Response, error) {
	if currency != "" && !currency.Valid() {
		return nil, &TypeValueError{Field: "currency", Value: currency}
	}
	data := Params{
		"transaction": transactionRefOrID,
		"amount":      amount,
	}
	if currency != "" {
		data["currency"] = string(currency)
	}
	if customerNote != "" {
		data["customer_note"] = customerNote
	}
	if merchantNote != "" {
		data["merchant_note"] = merchantNote
	}
	return s.client.Post(ctx, refundEndpoint, data)
}

// List returns one page of refunds, optionally restricted to a
// transaction reference or a currency.
func (s *RefundsService) List(ctx context.Context, reference string, currency Currency, opts ListOptions, dates DateRange) (*Response, error) {
	if currency != "" && !currency.Valid() {
		return nil, &TypeValueError{Field: "currency", Value: currency}
	}
	params := Merge(opts.Values(), dates.Values())
	if reference != "" {
		params["reference"] = reference
	}
	if currency != "" {
		params["currency"] = string(currency)
	}
	return s.client.Get(ctx, refundEndpoint, params)
}

// Fetch returns the details of a refund.
func (s *RefundsService) Fetch(ctx context.Context, reference string) (*Response, error) {
	return s.client.Get(ctx, refundEndpoint+reference, nil)
}
