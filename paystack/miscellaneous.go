package paystack

import "context"

// MiscellaneousService exposes the supporting lookups used to feed other
// endpoints: banks, countries and states.
// Reference: https://paystack.com/docs/api/miscellaneous/
type MiscellaneousService struct {
	client *Client
}

// BankListOptions filter the supported-bank listing. Zero values are
// omitted from the query.
type BankListOptions struct {
	// Country to list banks for, e.g. "nigeria" or "ghana".
	Country string
	PerPage int
	// PayWithBankTransfer filters for banks a customer can complete a
	// payment by transferring to.
	PayWithBankTransfer *bool
	// PayWithBank filters for banks a customer can pay directly from.
	PayWithBank *bool
	// EnabledForVerification filters for banks supported for account
	// verification in South Africa; combine with Country or Currency.
	EnabledForVerification *bool
	Gateway                Gateway
	Type                   Channel
	Currency               Currency
}

// ListBanks returns the supported banks and their properties.
// Unrecognized gateway, channel or currency values fail before any
// network I/O.
func (s *MiscellaneousService) ListBanks(ctx context.Context, opts BankListOptions) (*Response, error) {
	if opts.Gateway != "" && !opts.Gateway.Valid() {
		return nil, &TypeValueError{Field: "gateway", Value: opts.Gateway}
	}
	if opts.Type != "" && !opts.Type.Valid() {
		return nil, &TypeValueError{Field: "type", Value: opts.Type}
	}
	if opts.Currency != "" && !opts.Currency.Valid() {
		return nil, &TypeValueError{Field: "currency", Value: opts.Currency}
	}

	params := Params{
		"pay_with_bank_transfer":   FormatBool(opts.PayWithBankTransfer),
		"pay_with_bank":            FormatBool(opts.PayWithBank),
		"enabled_for_verification": FormatBool(opts.EnabledForVerification),
	}
	if opts.Country != "" {
		params["country"] = opts.Country
	}
	if opts.PerPage > 0 {
		params["perPage"] = opts.PerPage
	}
	if opts.Gateway != "" {
		params["gateway"] = string(opts.Gateway)
	}
	if opts.Type != "" {
		params["type"] = string(opts.Type)
	}
	if opts.Currency != "" {
		params["currency"] = string(opts.Currency)
	}
	return s.client.Get(ctx, "/bank", params)
}

// ListCountries returns the countries Paystack operates in.
func (s *MiscellaneousService) ListCountries(ctx context.Context) (*Response, error) {
	return s.client.Get(ctx, "/country", nil)
}

// ListStates returns the states of a country, for address verification.
func (s *MiscellaneousService) ListStates(ctx context.Context, countryCode string) (*Response, error) {
	return s.client.Get(ctx, "/address_verification/states", Params{"country": countryCode})
}
