// Package delivery defines the servers started by the application.
package delivery

import "context"

// Delivery is a long-running server registered in the "deliveries" group.
type Delivery interface {
	Serve(ctx context.Context) error
}
