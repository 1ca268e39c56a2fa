// Package paystack provides a client for the Paystack payment API.
//
// The package is organized into a small request-execution core and one
// service per API resource group (customers, subscriptions, subaccounts,
// dedicated virtual accounts, charges, verification, transfer control,
// transfer recipients, refunds, settlements, miscellaneous lookups).
// Every service method assembles a parameter mapping and delegates to the
// same four core operations: Get, Post, Put, Delete.
//
// # Usage
//
// Create a client with your secret key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := paystack.NewClient(
//		os.Getenv("PAYSTACK_SECRET_KEY"),
//		logger,
//		paystack.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	resp, err := client.Customers.Fetch(ctx, "CUS_xr58yrr2ujlft9k")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !resp.Status {
//		log.Printf("declined: %s", resp.Message)
//	}
//
// # Responses and errors
//
// Every call returns a Response envelope with Status, Message and a raw
// Data payload. Status=false means the API declined the request even if
// the HTTP exchange succeeded; it is not an error. Errors are reserved
// for problems on this side of the wire:
//
//   - SecretKeyError: missing secret key at construction
//   - TypeValueError: malformed key or unrecognized enum value
//   - InvalidRequestMethodError: unsupported HTTP verb
//   - APIError: 5xx responses and undecodable bodies
//   - ConnectionError: the API could not be reached
//
// All of these unwrap to ErrPayStack for broad matching.
//
// # Non-blocking calls
//
// Client.Async exposes the same four operations returning channels, run
// by the identical executor:
//
//	result := <-client.Async().Get(ctx, "/balance", nil)
//	if result.Err != nil {
//		log.Fatal(result.Err)
//	}
//
// Nothing in this package retries automatically; retry policy belongs to
// the caller.
package paystack
