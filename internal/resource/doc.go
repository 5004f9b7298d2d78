// Package resource bounds the resources the loader uses while reading
// point sources.
//
//   - Memory: a fail-fast budget for decoded coordinates
//   - Fetches: a limit on sources read concurrently
//   - IO: a token-bucket rate limit on bytes read from blob stores
//
// # Memory Budget
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30,
//	})
//
//	if err := rc.AcquireMemory(8 * int64(dim)); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//
// # IO Rate Limiting
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 50 << 20, // 50MB/s
//	})
//	r := resource.NewRateLimitedReader(ctx, blobReader, rc)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
