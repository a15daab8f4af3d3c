package foreach

import (
	"fmt"
	"iter"
	"log/slog"
)

// View is either a Sequence or a window over a slice. Exactly one is active:
// when seq is nil the view is in memory mode and mem is the window.
// The zero View is an empty memory view.
type View[T any] struct {
	seq Sequence[T]
	mem []T
}

// Segment describes Count elements of Array starting at Offset.
type Segment[T any] struct {
	Array  []T
	Offset int
	Count  int
}

// OfSequence returns a sequence-mode view over s. A nil s yields an empty
// memory view.
func OfSequence[T any](s Sequence[T]) View[T] {
	return View[T]{seq: s}
}

// Of returns a memory view over all of buf. A sub-slice is already a
// memory-range view in Go, so Of is also the passthrough for one.
func Of[T any](buf []T) View[T] {
	return View[T]{mem: buf}
}

// OfTail returns a memory view over buf[start:].
func OfTail[T any](buf []T, start int) (View[T], error) {
	if start < 0 || start > len(buf) {
		return View[T]{}, fmt.Errorf("%w: start %d, buffer length %d", ErrOutOfRange, start, len(buf))
	}
	return View[T]{mem: buf[start:]}, nil
}

// OfRange returns a memory view over buf[start:start+length].
func OfRange[T any](buf []T, start, length int) (View[T], error) {
	if start < 0 || length < 0 || start > len(buf) || length > len(buf)-start {
		return View[T]{}, fmt.Errorf("%w: start %d, length %d, buffer length %d", ErrOutOfRange, start, length, len(buf))
	}
	return View[T]{mem: buf[start : start+length : start+length]}, nil
}

// OfSegment returns a memory view over the elements described by s.
func OfSegment[T any](s Segment[T]) (View[T], error) {
	return OfRange(s.Array, s.Offset, s.Count)
}

// IsSequence reports whether v is in sequence mode.
func (v View[T]) IsSequence() bool { return v.seq != nil }

// Memory returns the memory window and true in memory mode. The slice
// aliases the caller's buffer.
func (v View[T]) Memory() ([]T, bool) {
	if v.seq != nil {
		return nil, false
	}
	return v.mem, true
}

// Len returns the element count, or -1 for a sequence that cannot report
// its size cheaply.
func (v View[T]) Len() int {
	if v.seq == nil {
		return len(v.mem)
	}
	if s, ok := v.seq.(Sized); ok {
		return s.Len()
	}
	return -1
}

// Cursor starts a traversal. In sequence mode this opens a Handle, so the
// cursor must be closed when the caller is done with it.
func (v View[T]) Cursor() Cursor[T] {
	if v.seq != nil {
		return Cursor[T]{h: v.seq.Open(), pos: -1}
	}
	return Cursor[T]{mem: v.mem, pos: -1}
}

// All returns an iterator for range-over-func loops. The underlying cursor is
// closed when the loop ends, including on break. A sequence that stops on an
// error ends the loop early and the error is only logged; use AllErr when the
// caller must see it.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := v.Cursor()
		defer func() {
			if err := c.Err(); err != nil {
				Logger().Warn("foreach: sequence ended with error",
					slog.String("handle", fmt.Sprintf("%T", c.h)),
					slog.Any("err", err))
			}
			_ = release(nil, &c)
		}()
		for c.Next() {
			if !yield(c.Current()) {
				return
			}
		}
	}
}

// AllErr is All with errors. Elements come with a nil error; if the sequence
// stopped on an error or failed to release, one last pair carries the zero
// value and that error.
//
//	for x, err := range v.AllErr() {
//		if err != nil {
//			return err
//		}
//		use(x)
//	}
func (v View[T]) AllErr() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		c := v.Cursor()
		defer func() { _ = release(nil, &c) }()
		for c.Next() {
			if !yield(c.Current(), nil) {
				return
			}
		}
		if err := release(c.Err(), &c); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}
