// Package delivery holds the servers the binaries run.
package delivery

import "context"

// Delivery is a long-running server started by the binaries and stopped through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
