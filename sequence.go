package foreach

import "iter"

// Sequence produces elements of unknown count. Each traversal opens its own
// Handle, which may hold resources until it is closed.
type Sequence[T any] interface {
	Open() Handle[T]
}

// Handle is a sequence's native iteration state. Current is valid only after
// Next returned true. Close releases whatever the handle holds.
type Handle[T any] interface {
	Next() bool
	Current() T
	Reset()
	Close() error
}

// Sized is implemented by sequences that know their length without
// traversing.
type Sized interface {
	Len() int
}

// Copier is implemented by sequences that can copy themselves into dst more
// efficiently than element by element. It returns the number of elements
// written.
type Copier[T any] interface {
	CopyTo(dst []T) (int, error)
}

type errer interface {
	Err() error
}

// FromSeq adapts a push iterator into a Sequence. Each Open pulls from a
// fresh call of s, so Reset restarts s from scratch; single-use iterators
// yield nothing after a Reset.
func FromSeq[T any](s iter.Seq[T]) Sequence[T] {
	return seqSource[T](s)
}

type seqSource[T any] iter.Seq[T]

func (s seqSource[T]) Open() Handle[T] {
	h := &pullHandle[T]{seq: iter.Seq[T](s)}
	h.next, h.stop = iter.Pull(h.seq)
	return h
}

type pullHandle[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
	cur  T
}

func (h *pullHandle[T]) Next() bool {
	v, ok := h.next()
	h.cur = v
	return ok
}

func (h *pullHandle[T]) Current() T { return h.cur }

func (h *pullHandle[T]) Reset() {
	h.stop()
	var zero T
	h.cur = zero
	h.next, h.stop = iter.Pull(h.seq)
}

func (h *pullHandle[T]) Close() error {
	h.stop()
	return nil
}
