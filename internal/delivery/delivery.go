// Package delivery defines the contract every inbound adapter implements.
package delivery

import "context"

// Delivery is a long-running inbound adapter such as an HTTP server or a
// scheduled worker. Serve blocks until the delivery stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
