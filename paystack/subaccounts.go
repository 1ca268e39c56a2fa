package paystack

import "context"

// SubAccountsService manages subaccounts, used to split payments between
// a main account and one or more subaccounts.
// Reference: https://paystack.com/docs/api/subaccount/
type SubAccountsService struct {
	client *Client
}

// SubAccountRequest holds the fields for creating or updating a
// subaccount.
type SubAccountRequest struct {
	BusinessName string
	// SettlementBank is the bank code for the settlement bank.
	SettlementBank string
	AccountNumber  string
	// PercentageCharge is the percentage the main account receives from
	// each payment made to the subaccount.
	PercentageCharge    float64
	Description         string
	PrimaryContactEmail string
	PrimaryContactName  string
	PrimaryContactPhone string
	Metadata            CustomFields
}

func (r SubAccountRequest) values() Params {
	data := Params{
		"business_name":     r.BusinessName,
		"settlement_bank":   r.SettlementBank,
		"account_number":    r.AccountNumber,
		"percentage_charge": r.PercentageCharge,
		"description":       r.Description,
	}
	if r.PrimaryContactEmail != "" {
		data["primary_contact_email"] = r.PrimaryContactEmail
	}
	if r.PrimaryContactName != "" {
		data["primary_contact_name"] = r.PrimaryContactName
	}
	if r.PrimaryContactPhone != "" {
		data["primary_contact_phone"] = r.PrimaryContactPhone
	}
	return Merge(data, r.Metadata.Values())
}

// Create creates a subaccount.
func (s *SubAccountsService) Create(ctx context.Context, req SubAccountRequest) (*Response, error) {
	return s.client.Post(ctx, subaccountEndpoint, req.values())
}

// Update updates a subaccount. active may be nil to leave the flag
// untouched; the wire protocol takes it as a lowercase string token.
func (s *SubAccountsService) Update(ctx context.Context, idOrCode string, req SubAccountRequest, active *bool, schedule SettlementSchedule) (*Response, error) {
	if schedule != "" && !schedule.Valid() {
		return nil, &TypeValueError{Field: "settlement_schedule", Value: schedule}
	}
	data := req.values()
	data["active"] = FormatBool(active)
	if schedule != "" {
		data["settlement_schedule"] = string(schedule)
	}
	return s.client.Put(ctx, subaccountEndpoint+idOrCode, data)
}

// List returns one page of subaccounts.
func (s *SubAccountsService) List(ctx context.Context, opts ListOptions, dates DateRange) (*Response, error) {
	return s.client.Get(ctx, subaccountEndpoint, Merge(opts.Values(), dates.Values()))
}

// Fetch returns the details of a specific subaccount.
func (s *SubAccountsService) Fetch(ctx context.Context, idOrCode string) (*Response, error) {
	return s.client.Get(ctx, subaccountEndpoint+idOrCode, nil)
}
