package paystack

import (
	"context"
	"time"
)

// ChargesService initiates payments on a configurable channel.
// Reference: https://paystack.com/docs/api/charge/
type ChargesService struct {
	client *Client
}

// Create initiates a charge. The final request body is the union of the
// serialized models and the scalar fields, scalars winning on collision.
func (s *ChargesService) Create(ctx context.Context, email string, auth AuthReference, fields CustomFields, opts ChargeOptions) (*Response, error) {
	data := Merge(auth.Values(), opts.Values(), Params{"email": email})
	if len(fields) > 0 {
		data["metadata"] = fields.Values()
	}
	return s.client.Post(ctx, chargeEndpoint, data)
}

// SubmitPIN submits a PIN for a pending charge.
func (s *ChargesService) SubmitPIN(ctx context.Context, pin int, reference string) (*Response, error) {
	data := Params{"pin": pin, "reference": reference}
	return s.client.Post(ctx, chargeEndpoint+"submit_pin", data)
}

// SubmitOTP submits an OTP to complete a charge.
func (s *ChargesService) SubmitOTP(ctx context.Context, otp int, reference string) (*Response, error) {
	data := Params{"otp": otp, "reference": reference}
	return s.client.Post(ctx, chargeEndpoint+"submit_otp", data)
}

// SubmitPhone submits a phone number to complete a charge.
func (s *ChargesService) SubmitPhone(ctx context.Context, phone, reference string) (*Response, error) {
	data := Params{"phone": phone, "reference": reference}
	return s.client.Post(ctx, chargeEndpoint+"submit_phone", data)
}

// SubmitBirthday submits the customer's birthday when the channel
// requires it.
func (s *ChargesService) SubmitBirthday(ctx context.Context, birthday time.Time, reference string) (*Response, error) {
	data := Params{"birthday": FormatDate(&birthday), "reference": reference}
	return s.client.Post(ctx, chargeEndpoint+"submit_birthday", data)
}

// SubmitAddress submits a billing address to continue a charge.
func (s *ChargesService) SubmitAddress(ctx context.Context, reference, address, city, state, zipCode string) (*Response, error) {
	data := Params{
		"reference": reference,
		"address":   address,
		"city":      city,
		"state":     state,
		"zip_code":  zipCode,
	}
	return s.client.Post(ctx, chargeEndpoint+"submit_address", data)
}

// CheckPending checks the state of a pending charge.
func (s *ChargesService) CheckPending(ctx context.Context, reference string) (*Response, error) {
	return s.client.Get(ctx, chargeEndpoint+reference, nil)
}
