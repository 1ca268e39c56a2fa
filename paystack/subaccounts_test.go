package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubAccountsCreate(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status": true, "message": "Subaccount created"}`))
	})

	req := SubAccountRequest{
		BusinessName:     "Sunshine Studios",
		SettlementBank:   "044",
		AccountNumber:    "0193274682",
		PercentageCharge: 18.2,
	}
	_, err := client.SubAccounts.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Sunshine Studios", gotBody["business_name"])
	assert.Equal(t, 18.2, gotBody["percentage_charge"])
	assert.NotContains(t, gotBody, "primary_contact_email")
}

func TestSubAccountsUpdate(t *testing.T) {
	t.Run("active flag is a string token", func(t *testing.T) {
		var gotBody map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"status": true, "message": "Subaccount updated"}`))
		})

		_, err := client.SubAccounts.Update(context.Background(), "ACCT_4hl4xenwpjnxe1p",
			SubAccountRequest{BusinessName: "Sunshine Studios"}, Bool(false), "")
		require.NoError(t, err)

		assert.Equal(t, "false", gotBody["active"])
		assert.NotContains(t, gotBody, "settlement_schedule")
	})

	t.Run("nil active flag is elided", func(t *testing.T) {
		var gotBody map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"status": true, "message": "Subaccount updated"}`))
		})

		_, err := client.SubAccounts.Update(context.Background(), "ACCT_4hl4xenwpjnxe1p",
			SubAccountRequest{BusinessName: "Sunshine Studios"}, nil, ScheduleWeekly)
		require.NoError(t, err)

		assert.NotContains(t, gotBody, "active")
		assert.Equal(t, "weekly", gotBody["settlement_schedule"])
	})

	t.Run("invalid schedule fails before network", func(t *testing.T) {
		called := false
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := client.SubAccounts.Update(context.Background(), "ACCT_4hl4xenwpjnxe1p",
			SubAccountRequest{}, nil, SettlementSchedule("daily"))

		var typeErr *TypeValueError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "settlement_schedule", typeErr.Field)
		assert.False(t, called)
	})
}
