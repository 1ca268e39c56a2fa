package paystack

import "context"

// TransferControlService manages the settings of transfers.
// Reference: https://paystack.com/docs/api/transfer-control/
type TransferControlService struct {
	client *Client
}

// CheckBalance returns the available balance per currency.
func (s *TransferControlService) CheckBalance(ctx context.Context) (*Response, error) {
	return s.client.Get(ctx, "/balance", nil)
}

// BalanceLedger returns all pay-ins and pay-outs that occurred on the
// integration.
func (s *TransferControlService) BalanceLedger(ctx context.Context) (*Response, error) {
	return s.client.Get(ctx, "/balance/ledger", nil)
}

// ResendOTP generates a new OTP and sends it to the customer. reason is
// either "resend_otp" or "transfer".
func (s *TransferControlService) ResendOTP(ctx context.Context, transferCode, reason string) (*Response, error) {
	data := Params{"transfer_code": transferCode, "reason": reason}
	return s.client.Post(ctx, "/transfer/resend_otp", data)
}

// DisableOTP starts the process of completing transfers without OTPs.
func (s *TransferControlService) DisableOTP(ctx context.Context) (*Response, error) {
	return s.client.Post(ctx, "/transfer/disable_otp", nil)
}

// FinalizeDisableOTP finalizes disabling OTP on transfers with the OTP
// sent to the business phone.
func (s *TransferControlService) FinalizeDisableOTP(ctx context.Context, otp string) (*Response, error) {
	return s.client.Post(ctx, "/transfer/disable_otp_finalize", Params{"otp": otp})
}

// EnableOTP turns OTP confirmation for transfers back on.
func (s *TransferControlService) EnableOTP(ctx context.Context) (*Response, error) {
	return s.client.Post(ctx, "/transfer/enable_otp", nil)
}
