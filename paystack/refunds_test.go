package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefundsCreate(t *testing.T) {
	t.Run("partial refund", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"status": true, "message": "Refund has been queued for processing"}`))
		})

		amount := int64(5000)
		_, err := client.Refunds.Create(context.Background(), "ref_123", &amount, CurrencyNGN, "duplicate charge", "")
		require.NoError(t, err)

		assert.Equal(t, "/refund/", gotPath)
		assert.Equal(t, "ref_123", gotBody["transaction"])
		assert.Equal(t, float64(5000), gotBody["amount"])
		assert.Equal(t, "NGN", gotBody["currency"])
		assert.Equal(t, "duplicate charge", gotBody["customer_note"])
		assert.NotContains(t, gotBody, "merchant_note")
	})

	t.Run("nil amount refunds the full transaction", func(t *testing.T) {
		var gotBody map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"status": true, "message": "Refund has been queued for processing"}`))
		})

		_, err := client.Refunds.Create(context.Background(), "ref_123", nil, "", "", "")
		require.NoError(t, err)

		assert.NotContains(t, gotBody, "amount")
		assert.NotContains(t, gotBody, "currency")
	})

	t.Run("invalid currency fails before network", func(t *testing.T) {
		called := false
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := client.Refunds.Create(context.Background(), "ref_123", nil, Currency("EUR"), "", "")

		var typeErr *TypeValueError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "currency", typeErr.Field)
		assert.False(t, called)
	})
}

func TestRefundsList(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status": true, "message": "Refunds retrieved", "data": []}`))
	})

	_, err := client.Refunds.List(context.Background(), "ref_123", CurrencyNGN, ListOptions{PerPage: 10}, DateRange{})
	require.NoError(t, err)

	assert.Equal(t, []string{"ref_123"}, gotQuery["reference"])
	assert.Equal(t, []string{"NGN"}, gotQuery["currency"])
	assert.Equal(t, []string{"10"}, gotQuery["perPage"])
}

func TestRefundsFetch(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status": true, "message": "Refund retrieved", "data": {"status": "processed"}}`))
	})

	resp, err := client.Refunds.Fetch(context.Background(), "ref_123")
	require.NoError(t, err)

	assert.Equal(t, "/refund/ref_123", gotPath)
	assert.True(t, resp.HasData())
}
