package paystack

import (
	"reflect"
	"time"
)

// Params is a flat mapping of wire field names to values, used for both
// request bodies and query strings. Entries whose value is nil (including
// typed nil pointers) are elided before transmission; the wire protocol
// distinguishes "field omitted" from "field null".
type Params map[string]any

// compact returns a copy of p without nil entries, with non-nil pointers
// dereferenced. Compacting twice equals compacting once.
func (p Params) compact() Params {
	if len(p) == 0 {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		if isNil(v) {
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Ptr {
			v = rv.Elem().Interface()
		}
		out[k] = v
	}
	return out
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Merge combines parameter mappings left to right. Later mappings win on
// key collision, so ad hoc scalar fields passed after a serialized model
// override the model's fields.
func Merge(maps ...Params) Params {
	out := Params{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Bool returns a pointer to b, for optional boolean fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for optional integer fields.
func Int(i int) *int { return &i }

// Date returns a pointer to t, for optional date fields.
func Date(t time.Time) *time.Time { return &t }

// ListOptions is the pagination window accepted by every list endpoint.
// Zero fields are omitted and the API applies its own defaults (50 per
// page, page 1).
type ListOptions struct {
	PerPage int
	Page    int
}

// Values serializes the window using its wire aliases.
func (o ListOptions) Values() Params {
	p := Params{}
	if o.PerPage > 0 {
		p["perPage"] = o.PerPage
	}
	if o.Page > 0 {
		p["page"] = o.Page
	}
	return p
}

// DateRange restricts a listing to records created inside the window.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Values serializes the range as ISO calendar dates, omitting unset ends.
func (d DateRange) Values() Params {
	p := Params{}
	if s := FormatDate(d.From); s != nil {
		p["from"] = *s
	}
	if s := FormatDate(d.To); s != nil {
		p["to"] = *s
	}
	return p
}

// CustomerDetails bundles the personal fields shared by the customer and
// dedicated-account endpoints.
type CustomerDetails struct {
	FirstName  string
	LastName   string
	Phone      string
	MiddleName string
}

// Values serializes the details under their wire names, eliding empty
// fields. Callers may exclude fields entirely by wire name; some endpoints
// never accept middle_name or phone regardless of value.
func (c CustomerDetails) Values(exclude ...string) Params {
	excluded := func(name string) bool {
		for _, ex := range exclude {
			if ex == name {
				return true
			}
		}
		return false
	}
	p := Params{}
	set := func(name, value string) {
		if value == "" || excluded(name) {
			return
		}
		p[name] = value
	}
	set("first_name", c.FirstName)
	set("last_name", c.LastName)
	set("phone", c.Phone)
	set("middle_name", c.MiddleName)
	return p
}

// Metadata is a free-form key/value bag attached to a resource.
type Metadata map[string]any

// CustomField is a single display field inside a metadata bag.
type CustomField struct {
	DisplayName  string `json:"display_name"`
	VariableName string `json:"variable_name"`
	Value        string `json:"value"`
}

// CustomFields is the custom_fields structure some endpoints accept at the
// top level of the request body.
type CustomFields []CustomField

// Values serializes the fields under the custom_fields wire name.
func (f CustomFields) Values() Params {
	if len(f) == 0 {
		return Params{}
	}
	return Params{"custom_fields": f}
}

// AuthReference identifies the amount and optional stored authorization
// for a charge. Amount is in the currency subunit.
type AuthReference struct {
	Amount        int64
	Authorization string
	Reference     string
}

// Values serializes the reference, always including the amount.
func (a AuthReference) Values() Params {
	p := Params{"amount": a.Amount}
	if a.Authorization != "" {
		p["authorization"] = a.Authorization
	}
	if a.Reference != "" {
		p["reference"] = a.Reference
	}
	return p
}

// BankDetails identifies a bank account for a direct bank charge.
type BankDetails struct {
	Code          string `json:"code"`
	AccountNumber string `json:"account_number"`
}

// BankTransfer carries pay-with-transfer details.
type BankTransfer struct {
	AccountExpiresAt string `json:"account_expires_at"`
}

// QRPayment selects a QR provider for a charge.
type QRPayment struct {
	Provider string `json:"provider"`
}

// USSDPayment selects a bank USSD code for a charge.
type USSDPayment struct {
	Type string `json:"type"`
}

// MobileMoney carries mobile money details for a charge.
type MobileMoney struct {
	Phone    string `json:"phone"`
	Provider string `json:"provider"`
}

// ChargeOptions holds the optional payment-channel details for a charge.
// At most one channel is normally set; the API rejects conflicting ones.
type ChargeOptions struct {
	Bank         *BankDetails
	BankTransfer *BankTransfer
	QR           *QRPayment
	USSD         *USSDPayment
	MobileMoney  *MobileMoney
	PIN          *int
	DeviceID     string
}

// Values serializes the set channels under their wire names.
func (o ChargeOptions) Values() Params {
	p := Params{}
	if o.Bank != nil {
		p["bank"] = o.Bank
	}
	if o.BankTransfer != nil {
		p["bank_transfer"] = o.BankTransfer
	}
	if o.QR != nil {
		p["qr"] = o.QR
	}
	if o.USSD != nil {
		p["ussd"] = o.USSD
	}
	if o.MobileMoney != nil {
		p["mobile_money"] = o.MobileMoney
	}
	if o.PIN != nil {
		p["pin"] = *o.PIN
	}
	if o.DeviceID != "" {
		p["device_id"] = o.DeviceID
	}
	return p
}
