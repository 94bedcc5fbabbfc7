// Package workers runs the terminal client's background jobs.
//
// A [Worker] is idle until Start and owns at most one goroutine, which
// exits when the start context is cancelled or Stop is called. [Workers]
// starts and stops a group of them together.
package workers

import "context"

// Worker is a restartable background job.
type Worker interface {
	// Start launches the job, stopping a previous run first.
	Start(ctx context.Context)

	// Stop cancels the job and blocks until its goroutine has exited. It is
	// a no-op when the job is not running.
	Stop()
}
