// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a transport that serves the application until it fails or is
// shut down through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
