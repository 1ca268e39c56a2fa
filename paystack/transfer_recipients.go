package paystack

import "context"

// TransferRecipientsService manages the beneficiaries money can be sent
// to.
// Reference: https://paystack.com/docs/api/transfer-recipient/
type TransferRecipientsService struct {
	client *Client
}

// RecipientRequest holds the fields for creating a transfer recipient.
type RecipientRequest struct {
	Type RecipientType
	// Name of the recipient according to their account registration.
	Name          string
	AccountNumber string
	BankCode      string
	Description   string
	Currency      Currency
	// AuthorizationCode from a previous transaction, in place of the
	// account details.
	AuthorizationCode string
	Metadata          Metadata
}

func (r RecipientRequest) validate() error {
	if !r.Type.Valid() {
		return &TypeValueError{Field: "type", Value: r.Type}
	}
	if r.Currency != "" && !r.Currency.Valid() {
		return &TypeValueError{Field: "currency", Value: r.Currency}
	}
	return nil
}

func (r RecipientRequest) values() Params {
	data := Params{
		"type":           string(r.Type),
		"name":           r.Name,
		"account_number": r.AccountNumber,
		"bank_code":      r.BankCode,
	}
	if r.Description != "" {
		data["description"] = r.Description
	}
	if r.Currency != "" {
		data["currency"] = string(r.Currency)
	}
	if r.AuthorizationCode != "" {
		data["authorization_code"] = r.AuthorizationCode
	}
	if r.Metadata != nil {
		data["metadata"] = r.Metadata
	}
	return data
}

// Create creates a transfer recipient. An unrecognized recipient type or
// currency fails before any network I/O.
func (s *TransferRecipientsService) Create(ctx context.Context, req RecipientRequest) (*Response, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, recipientEndpoint, req.values())
}

// BulkCreate creates multiple transfer recipients in one call.
func (s *TransferRecipientsService) BulkCreate(ctx context.Context, reqs []RecipientRequest) (*Response, error) {
	batch := make([]Params, 0, len(reqs))
	for _, req := range reqs {
		if err := req.validate(); err != nil {
			return nil, err
		}
		batch = append(batch, req.values())
	}
	return s.client.Post(ctx, recipientEndpoint+"bulk", Params{"batch": batch})
}

// List returns one page of transfer recipients.
func (s *TransferRecipientsService) List(ctx context.Context, opts ListOptions, dates DateRange) (*Response, error) {
	return s.client.Get(ctx, recipientEndpoint, Merge(opts.Values(), dates.Values()))
}

// Fetch returns the details of a transfer recipient.
func (s *TransferRecipientsService) Fetch(ctx context.Context, idOrCode string) (*Response, error) {
	return s.client.Get(ctx, recipientEndpoint+idOrCode, nil)
}

// Update updates a recipient's name and optionally their email.
func (s *TransferRecipientsService) Update(ctx context.Context, idOrCode, name, email string) (*Response, error) {
	data := Params{"name": name}
	if email != "" {
		data["email"] = email
	}
	return s.client.Put(ctx, recipientEndpoint+idOrCode, data)
}

// Delete removes a transfer recipient.
func (s *TransferRecipientsService) Delete(ctx context.Context, idOrCode string) (*Response, error) {
	return s.client.Delete(ctx, recipientEndpoint+idOrCode, nil)
}
