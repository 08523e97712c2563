package core

// export_limiter.go bounds how many exports run at once.
//
// An export loads every record of a table and holds the encoded file in
// memory until it is sent, so parallel exports are capped by a semaphore.
// When all slots are taken a request waits up to maxWait before failing
// with ErrTooManyExports. WaitForDrain lets shutdown wait for running
// exports.

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTooManyExports is returned when no export slot frees up in time.
var ErrTooManyExports = errors.New("too many concurrent exports")

// DefaultMaxConcurrentExports is used when the configured limit is not positive.
const DefaultMaxConcurrentExports = 4

// DefaultExportWait is used when the configured wait is not positive.
const DefaultExportWait = 10 * time.Second

// ExportLimiter caps concurrent exports.
type ExportLimiter struct {
	slots   chan struct{}
	maxWait time.Duration

	mu     sync.RWMutex
	active int
}

// NewExportLimiter allows at most maxConcurrent simultaneous exports.
func NewExportLimiter(maxConcurrent int, maxWait time.Duration) *ExportLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentExports
	}
	if maxWait <= 0 {
		maxWait = DefaultExportWait
	}
	return &ExportLimiter{
		slots:   make(chan struct{}, maxConcurrent),
		maxWait: maxWait,
	}
}

// Acquire takes a slot, waiting up to maxWait. The caller must Release
// after a nil return.
func (l *ExportLimiter) Acquire(ctx context.Context) error {
	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case l.slots <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrTooManyExports
	}
}

// TryAcquire takes a slot without waiting.
func (l *ExportLimiter) TryAcquire() bool {
	select {
	case l.slots <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		return true
	default:
		return false
	}
}

// Release frees a slot taken by Acquire or TryAcquire.
func (l *ExportLimiter) Release() {
	l.mu.Lock()
	l.active--
	l.mu.Unlock()
	<-l.slots
}

// Active returns the number of running exports.
func (l *ExportLimiter) Active() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// MaxConcurrent returns the slot count.
func (l *ExportLimiter) MaxConcurrent() int {
	return cap(l.slots)
}

// WaitForDrain blocks until no export is running or ctx is done.
func (l *ExportLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if l.Active() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
