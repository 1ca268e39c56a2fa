package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomersCreate(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status": true, "message": "Customer created"}`))
	})

	details := CustomerDetails{FirstName: "Jane", LastName: "Doe", Phone: "+2348012345678", MiddleName: "Testy"}
	resp, err := client.Customers.Create(context.Background(), "jane@example.com", details, Metadata{"plan": "gold"})
	require.NoError(t, err)

	assert.True(t, resp.Status)
	assert.Equal(t, "/customer/", gotPath)
	assert.Equal(t, "jane@example.com", gotBody["email"])
	assert.Equal(t, "Jane", gotBody["first_name"])
	assert.NotContains(t, gotBody, "middle_name", "middle_name is never sent on create")
	assert.Equal(t, map[string]any{"plan": "gold"}, gotBody["metadata"])
}

func TestCustomersValidate(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status": true, "message": "Customer Identification in progress"}`))
	})

	details := CustomerDetails{FirstName: "Jane", LastName: "Doe", Phone: "+2348012345678"}
	id := Identification{Country: "NG", BVN: "20012345677", BankCode: "007", AccountNumber: "0123456789"}
	_, err := client.Customers.Validate(context.Background(), "CUS_xr58yrr2ujlft9k", details, id)
	require.NoError(t, err)

	assert.Equal(t, "/customer/CUS_xr58yrr2ujlft9k/identification", gotPath)
	assert.Equal(t, "bank_account", gotBody["type"], "account type defaults to bank_account")
	assert.NotContains(t, gotBody, "phone", "phone is never sent on validate")
	assert.Equal(t, "NG", gotBody["country"])
}

func TestCustomersSetRiskAction(t *testing.T) {
	t.Run("invalid action fails before network", func(t *testing.T) {
		called := false
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := client.Customers.SetRiskAction(context.Background(), "jane@example.com", RiskAction("block"))

		var typeErr *TypeValueError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "risk_action", typeErr.Field)
		assert.False(t, called)
	})

	t.Run("valid action", func(t *testing.T) {
		var gotBody map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"status": true, "message": "Customer updated"}`))
		})

		_, err := client.Customers.SetRiskAction(context.Background(), "jane@example.com", RiskActionDeny)
		require.NoError(t, err)

		assert.Equal(t, "jane@example.com", gotBody["customer"])
		assert.Equal(t, "deny", gotBody["risk_action"])
	})
}

func TestCustomersList(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status": true, "message": "Customers retrieved", "data": []}`))
	})

	_, err := client.Customers.List(context.Background(), ListOptions{PerPage: 20, Page: 2}, DateRange{})
	require.NoError(t, err)

	assert.Equal(t, []string{"20"}, gotQuery["perPage"])
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.NotContains(t, gotQuery, "from")
}

func TestCustomersListAll(t *testing.T) {
	// Two full pages of 100, then a short page of 5
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		count := 100
		if page == 3 {
			count = 5
		}
		rows := make([]map[string]any, count)
		for i := range rows {
			rows[i] = map[string]any{"email": fmt.Sprintf("user%d-%d@example.com", page, i)}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Customers retrieved",
			"data":    rows,
		})
	})

	rows, err := client.Customers.ListAll(context.Background(), DateRange{})
	require.NoError(t, err)
	assert.Len(t, rows, 205)
}

func TestCustomersBatchFetch(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Customer retrieved",
			"data":    map[string]any{"path": r.URL.Path},
		})
	})

	codes := []string{"CUS_a", "CUS_b", "CUS_c"}
	results, err := client.Customers.BatchFetch(context.Background(), codes)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, code := range codes {
		resp, ok := results[code]
		require.True(t, ok)
		assert.True(t, resp.Status)
	}
}

func TestCustomersUpdate(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"status": true, "message": "Customer updated"}`))
	})

	_, err := client.Customers.Update(context.Background(), "CUS_xr58yrr2ujlft9k", CustomerDetails{FirstName: "Janet"}, nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/customer/CUS_xr58yrr2ujlft9k", gotPath)
}
