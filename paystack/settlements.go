package paystack

import (
	"context"
	"strconv"
)

// SettlementsService gives insight into payouts made by Paystack to the
// merchant's bank account.
// Reference: https://paystack.com/docs/api/settlement/
type SettlementsService struct {
	client *Client
}

// List returns settlements made to the settlement accounts. status and
// subaccount may be empty.
func (s *SettlementsService) List(ctx context.Context, opts ListOptions, dates DateRange, status SettlementStatus, subaccount string) (*Response, error) {
	if status != "" && !status.Valid() {
		return nil, &TypeValueError{Field: "status", Value: status}
	}
	params := Merge(opts.Values(), dates.Values())
	if status != "" {
		params["status"] = string(status)
	}
	if subaccount != "" {
		params["subaccount"] = subaccount
	}
	return s.client.Get(ctx, settlementEndpoint, params)
}

// Transactions returns the transactions that make up a settlement.
func (s *SettlementsService) Transactions(ctx context.Context, settlementID int64, opts ListOptions, dates DateRange) (*Response, error) {
	path := settlementEndpoint + strconv.FormatInt(settlementID, 10) + "/transactions"
	return s.client.Get(ctx, path, Merge(opts.Values(), dates.Values()))
}
