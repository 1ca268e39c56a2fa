package paystack

import (
	"context"
	"net/http"
)

// Result carries the outcome of a non-blocking call: exactly one of the
// two fields is meaningful, mirroring the (*Response, error) pair of the
// blocking surface.
type Result struct {
	Response *Response
	Err      error
}

// AsyncClient exposes the same four operations as Client without blocking
// the caller: each call returns immediately with a channel that yields the
// single Result when the round trip completes. Both surfaces run the same
// executor, so behavior and error taxonomy are identical by construction.
//
// Ordering between two independent calls is not guaranteed; callers that
// need sequencing must receive the first result before issuing the next
// call. Cancellation is the caller's context.
type AsyncClient struct {
	client *Client
}

// Async returns the non-blocking surface of the client.
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{client: c}
}

func (a *AsyncClient) do(ctx context.Context, method, path string, data, query Params) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		resp, err := a.client.request(ctx, method, path, data, query)
		ch <- Result{Response: resp, Err: err}
	}()
	return ch
}

// Get performs a GET request without blocking the caller.
func (a *AsyncClient) Get(ctx context.Context, path string, query Params) <-chan Result {
	return a.do(ctx, http.MethodGet, path, nil, query)
}

// Post performs a POST request without blocking the caller.
func (a *AsyncClient) Post(ctx context.Context, path string, data Params) <-chan Result {
	return a.do(ctx, http.MethodPost, path, data, nil)
}

// Put performs a PUT request without blocking the caller.
func (a *AsyncClient) Put(ctx context.Context, path string, data Params) <-chan Result {
	return a.do(ctx, http.MethodPut, path, data, nil)
}

// Delete performs a DELETE request without blocking the caller.
func (a *AsyncClient) Delete(ctx context.Context, path string, data Params) <-chan Result {
	return a.do(ctx, http.MethodDelete, path, data, nil)
}
