package paystack

import "context"

// VerificationService performs KYC checks.
// Reference: https://paystack.com/docs/api/verification/
type VerificationService struct {
	client *Client
}

// ResolveAccount confirms an account number belongs to the right
// customer. Available to businesses in Nigeria and Ghana.
func (s *VerificationService) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*Response, error) {
	params := Params{"account_number": accountNumber, "bank_code": bankCode}
	return s.client.Get(ctx, "/bank/resolve", params)
}

// AccountValidationRequest carries the details for validating an account
// before sending money. Only available to businesses in South Africa.
type AccountValidationRequest struct {
	// AccountName is the customer's first and last name.
	AccountName    string
	AccountNumber  string
	AccountType    AccountType
	BankCode       string
	CountryCode    string
	DocumentType   DocumentType
	DocumentNumber string
}

// ValidateAccount confirms the authenticity of a customer's account.
// Unrecognized account or document types fail before any network I/O.
func (s *VerificationService) ValidateAccount(ctx context.Context, req AccountValidationRequest) (*Response, error) {
	if !req.AccountType.Valid() {
		return nil, &TypeValueError{Field: "account_type", Value: req.AccountType}
	}
	if !req.DocumentType.Valid() {
		return nil, &TypeValueError{Field: "document_type", Value: req.DocumentType}
	}
	data := Params{
		"account_name":    req.AccountName,
		"account_number":  req.AccountNumber,
		"account_type":    string(req.AccountType),
		"bank_code":       req.BankCode,
		"country_code":    req.CountryCode,
		"document_type":   string(req.DocumentType),
		"document_number": req.DocumentNumber,
	}
	return s.client.Post(ctx, "/bank/validate", data)
}

// ResolveCardBIN resolves the first six digits of a card.
func (s *VerificationService) ResolveCardBIN(ctx context.Context, binCode string) (*Response, error) {
	return s.client.Get(ctx, "/decision/bin/"+binCode, nil)
}
