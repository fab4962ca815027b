package chops

import "context"

// Iterator describes some iterator over a data structure.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns the channel that the iterated items are sent on.
// It is closed when iteration ends for any reason.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop ends the iteration early. It must be called at most once;
// use a sync.Once when stopping from several goroutines.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration:
//
//	co := CoIterate[T](ctx, x.Iterator())
//	for i := range co.Items() {
//		... do stuff with i ...
//		if i meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// The iterating goroutine exits when the iterator is exhausted,
// Stop is called, or ctx is done, whichever comes first. With the
// usage above it does not outlive the for-range loop.
//
// Nothing else may advance the iterator while the goroutine runs.
func CoIterate[T any](ctx context.Context, iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func() {
		defer close(out)
		for iterator.Next() {
			select {
			case out <- iterator.Item():
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return co
}

// Collect drains an iterator into a slice.
func Collect[T any](iterator Iterator[T]) []T {
	var out []T
	for iterator.Next() {
		out = append(out, iterator.Item())
	}
	return out
}
