// Package resource implements the Controller that enforces a table's
// resource limits.
//
// A Controller governs three resources:
//
//   - Memory: a byte budget for column storage (non-blocking, fail-fast)
//   - Workers: the number of goroutines converting or scanning columns
//   - Ingest: a token bucket that rate-limits rows read by the loader
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for the hard limit and an atomic
// counter for usage. AcquireMemory never blocks; it fails immediately with
// ErrMemoryLimitExceeded when the reservation does not fit:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	})
//
//	if err := rc.AcquireMemory(rows * width); err != nil {
//	    // refuse to grow the table
//	}
//	defer rc.ReleaseMemory(rows * width)
//
// # Worker Limits
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// # Ingest Rate Limiting
//
// WaitIngest blocks until the bucket admits n rows. Requests larger than the
// burst are split, so any n is admitted eventually:
//
//	if err := rc.WaitIngest(ctx, len(batch)); err != nil {
//	    return err
//	}
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops. This
// keeps limits optional without nil checks at every call site.
package resource
