package syncer

import (
	"context"
)

// Syncer defines the interface for syncer implementations
// Syncers are long-running background tasks that keep the database aligned
// with an upstream feed
//
//go:generate mockgen -source=syncer.go -destination=../mocks/syncer.go -package=mocks -mock_names=Syncer=MockSyncer
type Syncer interface {
	// Start begins the syncer's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the syncer
	// This should wait for any in-progress cycle to complete
	Stop(ctx context.Context) error

	// Name returns the syncer's name for logging and identification
	Name() string
}
