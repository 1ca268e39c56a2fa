package paystack

import (
	"context"
	"strconv"
	"time"
)

// DedicatedAccountsService manages dedicated virtual accounts, the unique
// payment accounts Paystack provisions for a merchant's customers.
// Reference: https://paystack.com/docs/api/dedicated-virtual-account/
//
// Dedicated NUBAN must be enabled for the business.
type DedicatedAccountsService struct {
	client *Client
}

// DedicatedAccountOptions are the optional split and provider fields
// shared by create and split.
type DedicatedAccountOptions struct {
	PreferredBank DVABank
	SubAccount    string
	SplitCode     string
}

func (o DedicatedAccountOptions) validate() error {
	if o.PreferredBank != "" && !o.PreferredBank.Valid() {
		return &TypeValueError{Field: "preferred_bank", Value: o.PreferredBank}
	}
	return nil
}

func (o DedicatedAccountOptions) values() Params {
	p := Params{}
	if o.PreferredBank != "" {
		p["preferred_bank"] = string(o.PreferredBank)
	}
	if o.SubAccount != "" {
		p["subaccount"] = o.SubAccount
	}
	if o.SplitCode != "" {
		p["split_code"] = o.SplitCode
	}
	return p
}

// Create creates a dedicated virtual account for an existing customer.
// customer may be nil when the customer profile is already complete.
func (s *DedicatedAccountsService) Create(ctx context.Context, customerIDOrCode string, opts DedicatedAccountOptions, customer *CustomerDetails) (*Response, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	data := Merge(opts.values(), Params{"customer": customerIDOrCode})
	if customer != nil {
		data = Merge(customer.Values("middle_name"), data)
	}
	return s.client.Post(ctx, dedicatedEndpoint, data)
}

// AssignRequest bundles the fields needed to create a customer, validate
// them, and assign a dedicated account in one call.
type AssignRequest struct {
	Email         string
	Customer      CustomerDetails
	PreferredBank DVABank
	// Country of the customer; currently NG only.
	Country       string
	AccountNumber string
	BVN           string
	BankCode      string
	SubAccount    string
	SplitCode     string
}

// Assign creates, validates and assigns a dedicated account to a new
// customer.
func (s *DedicatedAccountsService) Assign(ctx context.Context, req AssignRequest) (*Response, error) {
	if req.PreferredBank != "" && !req.PreferredBank.Valid() {
		return nil, &TypeValueError{Field: "preferred_bank", Value: req.PreferredBank}
	}
	data := Merge(req.Customer.Values("middle_name"), Params{
		"email":          req.Email,
		"preferred_bank": string(req.PreferredBank),
		"country":        req.Country,
	})
	if req.AccountNumber != "" {
		data["account_number"] = req.AccountNumber
	}
	if req.BVN != "" {
		data["bvn"] = req.BVN
	}
	if req.BankCode != "" {
		data["bank_code"] = req.BankCode
	}
	if req.SubAccount != "" {
		data["subaccount"] = req.SubAccount
	}
	if req.SplitCode != "" {
		data["split_code"] = req.SplitCode
	}
	return s.client.Post(ctx, dedicatedEndpoint, data)
}

// List returns dedicated accounts. active may be nil to skip the flag;
// currency may be empty.
func (s *DedicatedAccountsService) List(ctx context.Context, active *bool, currency Currency, providerSlug, bankID, customerID string) (*Response, error) {
	if currency != "" && !currency.Valid() {
		return nil, &TypeValueError{Field: "currency", Value: currency}
	}
	params := Params{"active": FormatBool(active)}
	if currency != "" {
		params["currency"] = string(currency)
	}
	if providerSlug != "" {
		params["provider_slug"] = providerSlug
	}
	if bankID != "" {
		params["bank_id"] = bankID
	}
	if customerID != "" {
		params["customer"] = customerID
	}
	return s.client.Get(ctx, dedicatedEndpoint, params)
}

// Fetch returns the details of a dedicated virtual account.
func (s *DedicatedAccountsService) Fetch(ctx context.Context, dedicatedAccountID int64) (*Response, error) {
	return s.client.Get(ctx, dedicatedEndpoint+strconv.FormatInt(dedicatedAccountID, 10), nil)
}

// Requery requeries a dedicated virtual account for new transactions.
// transferDate may be nil.
func (s *DedicatedAccountsService) Requery(ctx context.Context, accountNumber, providerSlug string, transferDate *time.Time) (*Response, error) {
	params := Params{
		"account_number": accountNumber,
		"provider_slug":  providerSlug,
		"date":           FormatDate(transferDate),
	}
	return s.client.Get(ctx, dedicatedEndpoint+"requery", params)
}

// Deactivate deactivates a dedicated virtual account.
func (s *DedicatedAccountsService) Deactivate(ctx context.Context, dedicatedAccountID int64) (*Response, error) {
	return s.client.Delete(ctx, dedicatedEndpoint+strconv.FormatInt(dedicatedAccountID, 10), nil)
}

// Split splits a dedicated account's transactions with one or more
// accounts.
func (s *DedicatedAccountsService) Split(ctx context.Context, customerIDOrCode string, opts DedicatedAccountOptions) (*Response, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	data := Merge(opts.values(), Params{"customer": customerIDOrCode})
	return s.client.Post(ctx, dedicatedEndpoint+"split", data)
}

// RemoveSplit removes the split on a dedicated virtual account.
func (s *DedicatedAccountsService) RemoveSplit(ctx context.Context, accountNumber string) (*Response, error) {
	return s.client.Delete(ctx, dedicatedEndpoint+"split", Params{"account_number": accountNumber})
}

// BankProviders returns the available dedicated-account bank providers.
func (s *DedicatedAccountsService) BankProviders(ctx context.Context) (*Response, error) {
	return s.client.Get(ctx, dedicatedEndpoint+"available_providers", nil)
}
