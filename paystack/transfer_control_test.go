package paystack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferControlCheckBalance(t *testing.T) {
	var gotMethod string
	var paths []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"status": true, "message": "Balances retrieved", "data": [{"currency": "NGN", "balance": 1700000}]}`))
	})

	resp, err := client.TransferControl.CheckBalance(context.Background())
	require.NoError(t, err)
	_, err = client.TransferControl.BalanceLedger(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, []string{"/balance", "/balance/ledger"}, paths)

	var balances []struct {
		Currency string `json:"currency"`
		Balance  int64  `json:"balance"`
	}
	require.NoError(t, resp.UnmarshalData(&balances))
	require.Len(t, balances, 1)
	assert.Equal(t, int64(1700000), balances[0].Balance)
}

func TestTransferControlResendOTP(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status": true, "message": "OTP has been resent"}`))
	})

	_, err := client.TransferControl.ResendOTP(context.Background(), "TRF_vsyqdmlzble3uii", "resend_otp")
	require.NoError(t, err)

	assert.Equal(t, "/transfer/resend_otp", gotPath)
	assert.Equal(t, "TRF_vsyqdmlzble3uii", gotBody["transfer_code"])
	assert.Equal(t, "resend_otp", gotBody["reason"])
}

func TestTransferControlOTPToggle(t *testing.T) {
	var gotMethod string
	var paths []string
	var bodies []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		paths = append(paths, r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(raw))
		w.Write([]byte(`{"status": true, "message": "OTP status updated"}`))
	})

	_, err := client.TransferControl.DisableOTP(context.Background())
	require.NoError(t, err)
	_, err = client.TransferControl.EnableOTP(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, []string{"/transfer/disable_otp", "/transfer/enable_otp"}, paths)
	assert.Equal(t, []string{"", ""}, bodies, "toggles send no request body")
}

func TestTransferControlFinalizeDisableOTP(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status": true, "message": "OTP requirement for transfers has been disabled"}`))
	})

	_, err := client.TransferControl.FinalizeDisableOTP(context.Background(), "928783")
	require.NoError(t, err)

	assert.Equal(t, "/transfer/disable_otp_finalize", gotPath)
	assert.Equal(t, "928783", gotBody["otp"])
}
