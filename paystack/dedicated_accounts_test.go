package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedicatedAccountsCreate(t *testing.T) {
	t.Run("sends customer and provider", func(t *testing.T) {
		var gotBody map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"status": true, "message": "NUBAN successfully created"}`))
		})

		opts := DedicatedAccountOptions{PreferredBank: DVABankWema}
		_, err := client.DedicatedAccounts.Create(context.Background(), "CUS_xr58yrr2ujlft9k", opts, nil)
		require.NoError(t, err)

		assert.Equal(t, "CUS_xr58yrr2ujlft9k", gotBody["customer"])
		assert.Equal(t, "wema-bank", gotBody["preferred_bank"])
		assert.NotContains(t, gotBody, "split_code")
	})

	t.Run("unknown provider fails before network", func(t *testing.T) {
		called := false
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		opts := DedicatedAccountOptions{PreferredBank: DVABank("gtbank")}
		_, err := client.DedicatedAccounts.Create(context.Background(), "CUS_xr58yrr2ujlft9k", opts, nil)

		var typeErr *TypeValueError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "preferred_bank", typeErr.Field)
		assert.False(t, called)
	})
}

func TestDedicatedAccountsAssign(t *testing.T) {
	t.Run("sends customer details and account fields", func(t *testing.T) {
		var gotBody map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"status": true, "message": "Assign dedicated account in progress"}`))
		})

		req := AssignRequest{
			Email:         "jane@example.com",
			Customer:      CustomerDetails{FirstName: "Jane", LastName: "Doe", Phone: "+2348012345678"},
			PreferredBank: DVABankTitan,
			Country:       "NG",
			BVN:           "20012345677",
		}
		_, err := client.DedicatedAccounts.Assign(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "jane@example.com", gotBody["email"])
		assert.Equal(t, "Jane", gotBody["first_name"])
		assert.Equal(t, "titan-paystack", gotBody["preferred_bank"])
		assert.Equal(t, "20012345677", gotBody["bvn"])
		assert.NotContains(t, gotBody, "account_number")
	})

	t.Run("unknown provider fails before network", func(t *testing.T) {
		client, _ := newTestClient(t, okHandler(`{"status": true, "message": "ok"}`))

		_, err := client.DedicatedAccounts.Assign(context.Background(), AssignRequest{
			Email:         "jane@example.com",
			PreferredBank: DVABank("access-bank"),
		})

		var typeErr *TypeValueError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "preferred_bank", typeErr.Field)
	})
}

func TestDedicatedAccountsList(t *testing.T) {
	t.Run("filters serialize to query", func(t *testing.T) {
		var gotQuery map[string][]string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"status": true, "message": "Managed accounts successfully retrieved", "data": []}`))
		})

		_, err := client.DedicatedAccounts.List(context.Background(), Bool(true), CurrencyNGN, "wema-bank", "", "")
		require.NoError(t, err)

		assert.Equal(t, []string{"true"}, gotQuery["active"], "active flag crosses the wire as a string token")
		assert.Equal(t, []string{"NGN"}, gotQuery["currency"])
		assert.Equal(t, []string{"wema-bank"}, gotQuery["provider_slug"])
		assert.NotContains(t, gotQuery, "bank_id")
	})

	t.Run("nil active flag is elided", func(t *testing.T) {
		var gotQuery map[string][]string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"status": true, "message": "Managed accounts successfully retrieved", "data": []}`))
		})

		_, err := client.DedicatedAccounts.List(context.Background(), nil, "", "", "", "")
		require.NoError(t, err)

		assert.NotContains(t, gotQuery, "active")
	})

	t.Run("invalid currency fails before network", func(t *testing.T) {
		called := false
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := client.DedicatedAccounts.List(context.Background(), nil, Currency("EUR"), "", "", "")

		var typeErr *TypeValueError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "currency", typeErr.Field)
		assert.False(t, called)
	})
}

func TestDedicatedAccountsRequery(t *testing.T) {
	t.Run("with transfer date", func(t *testing.T) {
		var gotPath string
		var gotQuery map[string][]string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"status": true, "message": "Requery in progress"}`))
		})

		date := time.Date(2026, time.August, 20, 14, 0, 0, 0, time.UTC)
		_, err := client.DedicatedAccounts.Requery(context.Background(), "0033322211", "wema-bank", &date)
		require.NoError(t, err)

		assert.Equal(t, "/dedicated_account/requery", gotPath)
		assert.Equal(t, []string{"0033322211"}, gotQuery["account_number"])
		assert.Equal(t, []string{"2026-08-20"}, gotQuery["date"])
	})

	t.Run("nil date is elided", func(t *testing.T) {
		var gotQuery map[string][]string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"status": true, "message": "Requery in progress"}`))
		})

		_, err := client.DedicatedAccounts.Requery(context.Background(), "0033322211", "wema-bank", nil)
		require.NoError(t, err)

		assert.NotContains(t, gotQuery, "date")
	})
}

func TestDedicatedAccountsRemoveSplit(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status": true, "message": "Subaccount unassigned"}`))
	})

	_, err := client.DedicatedAccounts.RemoveSplit(context.Background(), "0033322211")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/dedicated_account/split", gotPath)
	assert.Equal(t, "0033322211", gotBody["account_number"], "unassigning a split carries a request body")
}

func TestDedicatedAccountsDeactivate(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"status": true, "message": "Managed Account Successfully Unassigned"}`))
	})

	_, err := client.DedicatedAccounts.Deactivate(context.Background(), 173)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/dedicated_account/173", gotPath)
}
