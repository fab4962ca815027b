// Package chops provides useful channel operations
// that are not provided by the standard `<-` mechanism.
package chops

// Status represents the result of a non-blocking channel
// receive. It can be Ok, Closed, or Blocked.
type Status int

func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case Closed:
		return "Closed"
	case Blocked:
		return "Blocked"
	default:
		return "<invalid chops.Status>"
	}
}

const (
	// The channel gave up an element without blocking.
	Ok Status = iota
	// The channel is closed and drained.
	Closed
	// The channel is empty but still open.
	Blocked
)

type Result[T any] struct {
	value  T
	status Status
}

// Get returns the element and the Status of the receive.
// Unless the Status is Ok, the element is the zero T.
func (r Result[T]) Get() (T, Status) {
	return r.value, r.status
}

// Match performs an exhaustive match on the Result.
func (r Result[T]) Match(ok func(T), closed, blocked func()) {
	switch r.status {
	case Ok:
		ok(r.value)
	case Closed:
		closed()
	case Blocked:
		blocked()
	default:
		panic("unhandled case in Match")
	}
}

// TryRecv attempts a non-blocking receive from a channel.
func TryRecv[T any](ch <-chan T) Result[T] {
	select {
	case x, ok := <-ch:
		if !ok {
			return Result[T]{status: Closed}
		}
		return Result[T]{value: x, status: Ok}
	default:
		return Result[T]{status: Blocked}
	}
}
