// Package delivery holds the process entry points: the API server, the worker
// push server and the background sweeper.
package delivery

import "context"

// Delivery is a long running entry point started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
