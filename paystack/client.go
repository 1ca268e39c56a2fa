package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the Paystack API host.
const DefaultBaseURL = "https://api.paystack.co"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "paystackease-go"
)

// Client is a Paystack API client. It holds only immutable configuration
// (base URL, secret key, HTTP client), so a single instance is safe for
// concurrent use across goroutines.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     zerolog.Logger
	userAgent  string

	// One service per resource group. Each method assembles a parameter
	// mapping and delegates to the four core operations below.
	Customers          *CustomersService
	Subscriptions      *SubscriptionsService
	SubAccounts        *SubAccountsService
	DedicatedAccounts  *DedicatedAccountsService
	Charges            *ChargesService
	Verification       *VerificationService
	TransferControl    *TransferControlService
	TransferRecipients *TransferRecipientsService
	Refunds            *RefundsService
	Settlements        *SettlementsService
	Misc               *MiscellaneousService
}

// NewClient creates a new Paystack client authenticated with secretKey.
// The key is validated eagerly: a blank key fails with *SecretKeyError and
// a malformed one with *TypeValueError, before any network I/O.
func NewClient(secretKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, &SecretKeyError{
			Message: "secret key is required: pass one explicitly or set PAYSTACK_SECRET_KEY",
		}
	}
	for _, r := range secretKey {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return nil, &TypeValueError{Field: "secret_key", Value: "key contains whitespace or control characters"}
		}
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	c.Customers = &CustomersService{client: c}
	c.Subscriptions = &SubscriptionsService{client: c}
	c.SubAccounts = &SubAccountsService{client: c}
	c.DedicatedAccounts = &DedicatedAccountsService{client: c}
	c.Charges = &ChargesService{client: c}
	c.Verification = &VerificationService{client: c}
	c.TransferControl = &TransferControlService{client: c}
	c.TransferRecipients = &TransferRecipientsService{client: c}
	c.Refunds = &RefundsService{client: c}
	c.Settlements = &SettlementsService{client: c}
	c.Misc = &MiscellaneousService{client: c}

	return c, nil
}

var validMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// request turns a (verb, path, parameters) triple into a Response. It is
// the single execution contract shared by the blocking and non-blocking
// surfaces. A well-formed body with status=false comes back as a Response,
// not an error; only transport and protocol breakage produce errors.
func (c *Client) request(ctx context.Context, method, path string, data, query Params) (*Response, error) {
	method = strings.ToUpper(method)
	if !validMethods[method] {
		c.logger.Error().Str("method", method).Msg("Unsupported HTTP method")
		return nil, &InvalidRequestMethodError{Method: method}
	}

	requestURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if q := query.compact(); len(q) > 0 {
		values := url.Values{}
		for k, v := range q {
			values.Set(k, fmt.Sprint(v))
		}
		requestURL += "?" + values.Encode()
	}

	var body io.Reader
	if d := data.compact(); len(d) > 0 {
		encoded, err := json.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("Request failed")
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	if resp.StatusCode >= 500 {
		c.logger.Error().Int("status_code", resp.StatusCode).Str("path", path).Msg("Paystack server error")
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "server error occurred"}
	}

	// Missing keys fall back to the documented defaults: status=false,
	// empty message, nil data. Many error responses omit data entirely.
	var envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("undecodable response body: %v", err),
		}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status_code", resp.StatusCode).
		Bool("status", envelope.Status).
		Msg("Paystack API response")

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     envelope.Status,
		Message:    envelope.Message,
		Data:       envelope.Data,
	}, nil
}

// Get performs a GET request against path with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query Params) (*Response, error) {
	return c.request(ctx, http.MethodGet, path, nil, query)
}

// Post performs a POST request against path with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, data Params) (*Response, error) {
	return c.request(ctx, http.MethodPost, path, data, nil)
}

// Put performs a PUT request against path with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, data Params) (*Response, error) {
	return c.request(ctx, http.MethodPut, path, data, nil)
}

// Delete performs a DELETE request against path. Some endpoints take a
// JSON body on delete (removing a dedicated-account split does).
func (c *Client) Delete(ctx context.Context, path string, data Params) (*Response, error) {
	return c.request(ctx, http.MethodDelete, path, data, nil)
}
