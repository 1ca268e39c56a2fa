package paystack

import "time"

// The wire protocol accepts only strings in query and body fields, never
// native date or boolean values. These converters are total and no-ops on
// nil, so wrapper code can apply them unconditionally to optional fields.

// FormatDate converts a date to its wire representation (YYYY-MM-DD).
// Nil in, nil out.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// FormatDateTime converts a timestamp to its wire representation
// (YYYY-MM-DD hh:mm:ss). Nil in, nil out.
func FormatDateTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02 15:04:05")
	return &s
}

// FormatBool converts a boolean to the lowercase wire token "true" or
// "false". Nil in, nil out.
func FormatBool(b *bool) *string {
	if b == nil {
		return nil
	}
	s := "false"
	if *b {
		s = "true"
	}
	return &s
}

// ToSubunit converts an amount in a currency's major unit to the subunit
// Paystack expects, e.g. 150 NGN to 15000 kobo.
func ToSubunit(amount int64, currency Currency) (int64, error) {
	if !currency.Valid() {
		return 0, &TypeValueError{Field: "currency", Value: currency}
	}
	return amount * 100, nil
}
