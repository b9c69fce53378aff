// Package runner drives a generator over a grid and publishes snapshots of
// its progress for display.
//
// What:
//
//   - Runner owns one algorithm and one grid for a single generation run.
//   - Step and RunToCompletion advance it synchronously.
//   - Run advances it on a timer in its own goroutine and sends deep copies
//     of the grid over a channel. The channel holds at most one snapshot; a
//     newer snapshot replaces an unread one, so a slow consumer never stalls
//     generation and always sees the latest state. The channel is closed
//     after the final snapshot or when the context is cancelled.
//   - Pause, Resume and SetInterval may be called from any goroutine while
//     Run is active.
//
// Regenerating is done by discarding a Runner and creating a new one.
//
// Logging uses a logrus.FieldLogger tagged with the run id, algorithm, size
// and seed.
package runner
