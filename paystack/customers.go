package paystack

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// CustomersService manages customers on the integration.
// Reference: https://paystack.com/docs/api/customer/
type CustomersService struct {
	client *Client
}

// Create creates a customer. Metadata may be nil.
func (s *CustomersService) Create(ctx context.Context, email string, details CustomerDetails, metadata Metadata) (*Response, error) {
	data := Merge(details.Values("middle_name"), Params{"email": email})
	if metadata != nil {
		data["metadata"] = metadata
	}
	return s.client.Post(ctx, customerEndpoint, data)
}

// Identification carries the KYC details used to validate a customer.
type Identification struct {
	// Country is the 2-letter code of the identification issuer.
	Country string
	// Type of account; only "bank_account" is currently supported and is
	// the default when empty.
	Type string
	// Value is the customer identification number, when applicable.
	Value         string
	BVN           string
	BankCode      string
	AccountNumber string
}

// Validate validates a customer's identity.
func (s *CustomersService) Validate(ctx context.Context, emailOrCode string, details CustomerDetails, id Identification) (*Response, error) {
	if id.Type == "" {
		id.Type = "bank_account"
	}
	data := Merge(details.Values("phone"), Params{
		"type":           id.Type,
		"country":        id.Country,
		"bvn":            id.BVN,
		"bank_code":      id.BankCode,
		"account_number": id.AccountNumber,
	})
	if id.Value != "" {
		data["value"] = id.Value
	}
	return s.client.Post(ctx, customerEndpoint+emailOrCode+"/identification", data)
}

// SetRiskAction whitelists or blacklists a customer.
func (s *CustomersService) SetRiskAction(ctx context.Context, emailOrCode string, action RiskAction) (*Response, error) {
	if action != "" && !action.Valid() {
		return nil, &TypeValueError{Field: "risk_action", Value: action}
	}
	data := Params{"customer": emailOrCode}
	if action != "" {
		data["risk_action"] = string(action)
	}
	return s.client.Post(ctx, customerEndpoint+"set_risk_action", data)
}

// DeactivateAuthorization deactivates an authorization when the card
// needs to be forgotten.
func (s *CustomersService) DeactivateAuthorization(ctx context.Context, authorizationCode string) (*Response, error) {
	data := Params{"authorization_code": authorizationCode}
	return s.client.Post(ctx, customerEndpoint+"deactivate_authorization", data)
}

// Update updates a customer. Metadata may be nil.
func (s *CustomersService) Update(ctx context.Context, customerCode string, details CustomerDetails, metadata Metadata) (*Response, error) {
	data := details.Values("middle_name")
	if metadata != nil {
		data["metadata"] = metadata
	}
	return s.client.Put(ctx, customerEndpoint+customerCode, data)
}

// Fetch returns the details of a specific customer.
func (s *CustomersService) Fetch(ctx context.Context, emailOrCode string) (*Response, error) {
	return s.client.Get(ctx, customerEndpoint+emailOrCode, nil)
}

// List returns one page of customers.
func (s *CustomersService) List(ctx context.Context, opts ListOptions, dates DateRange) (*Response, error) {
	return s.client.Get(ctx, customerEndpoint, Merge(opts.Values(), dates.Values()))
}

// ListAll drains every page of customers and returns the decoded rows.
func (s *CustomersService) ListAll(ctx context.Context, dates DateRange) ([]map[string]any, error) {
	const pageSize = 100

	var all []map[string]any
	for page := 1; ; page++ {
		resp, err := s.List(ctx, ListOptions{PerPage: pageSize, Page: page}, dates)
		if err != nil {
			return nil, fmt.Errorf("failed to list customers: %w", err)
		}
		if !resp.Status {
			return nil, fmt.Errorf("paystack declined listing customers: %s", resp.Message)
		}

		var rows []map[string]any
		if resp.HasData() {
			if err := resp.UnmarshalData(&rows); err != nil {
				return nil, fmt.Errorf("failed to parse customer list: %w", err)
			}
		}
		all = append(all, rows...)

		s.client.logger.Debug().
			Int("page", page).
			Int("count", len(rows)).
			Int("total", len(all)).
			Msg("Retrieved customers")

		if len(rows) < pageSize {
			break
		}
	}

	return all, nil
}

// BatchFetch fetches several customers concurrently with bounded
// parallelism. The first transport or protocol error aborts the batch;
// declined lookups come back as Responses with Status=false.
func (s *CustomersService) BatchFetch(ctx context.Context, emailsOrCodes []string) (map[string]*Response, error) {
	results := make(map[string]*Response, len(emailsOrCodes))
	if len(emailsOrCodes) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(10)

	var mu sync.Mutex
	for _, code := range emailsOrCodes {
		code := code
		g.Go(func() error {
			resp, err := s.Fetch(ctx, code)
			if err != nil {
				return err
			}
			mu.Lock()
			results[code] = resp
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
