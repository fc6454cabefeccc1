// Package delivery defines the contract every transport (HTTP, worker, ...)
// fulfils so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves until its context ends
// or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
