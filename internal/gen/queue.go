package gen

import (
	"context"
	"errors"
	"log"
	"time"
)

// Queue serializes all generative calls system-wide. The upstream
// backend enforces aggressive per-minute throttling, so exactly one task
// runs at a time and consecutive task starts are spaced at least
// Interval apart. This is a deliberate throughput ceiling: widening it
// without upstream quota negotiation cascades into throttling failures.
//
// Construct one Queue at process start and pass it by reference to
// every consumer.
type Queue struct {
	interval time.Duration
	retries  int
	tasks    chan func()

	// test seams
	sleep func(time.Duration)
	now   func() time.Time
}

const defaultBuffer = 256

// NewQueue starts the worker goroutine. interval is the minimum gap
// between task starts; retries is how many extra attempts a throttled
// task gets before giving up.
func NewQueue(interval time.Duration, retries int) *Queue {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if retries < 0 {
		retries = 0
	}
	q := &Queue{
		interval: interval,
		retries:  retries,
		tasks:    make(chan func(), defaultBuffer),
		sleep:    time.Sleep,
		now:      time.Now,
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	var lastStart time.Time
	for fn := range q.tasks {
		if !lastStart.IsZero() {
			if wait := q.interval - q.now().Sub(lastStart); wait > 0 {
				q.sleep(wait)
			}
		}
		lastStart = q.now()
		fn()
	}
}

type outcome[T any] struct {
	value T
	err   error
}

// Submit enqueues a task and blocks until it resolves or ctx expires.
// Tasks execute in submission order. On a throttled error the task is
// retried in place after a longer backoff, up to the queue's retry
// budget; any other error fails immediately. Submit never panics and
// never returns a partial value: callers get (zero, err) on every
// failure class and treat it as "show fallback".
//
// If ctx expires while waiting, the caller gets ctx's error but the
// task is not cancelled; its eventual result is simply dropped and the
// queue keeps draining.
func Submit[T any](q *Queue, ctx context.Context, task func(context.Context) (T, error)) (T, error) {
	var zero T
	done := make(chan outcome[T], 1)

	q.tasks <- func() {
		var lastErr error
		for attempt := 0; attempt <= q.retries; attempt++ {
			if attempt > 0 {
				q.sleep(q.interval * 2)
			}
			v, err := task(ctx)
			if err == nil {
				done <- outcome[T]{value: v}
				return
			}
			lastErr = err
			if !errors.Is(err, ErrThrottled) {
				break
			}
		}
		log.Printf("[gen] task failed: %v", lastErr)
		done <- outcome[T]{err: lastErr}
	}

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
