package foreach

import "errors"

// Pair holds one element from each side of a Zip.
type Pair[T, U any] struct {
	First  T
	Second U
}

// Zip pairs the elements of a and b in order and stops as soon as either
// side is exhausted; the rest of the longer side is dropped. a is advanced
// before b, so b is not advanced again once a runs out.
//
// sizeHint pre-sizes the result when >= 0, up to 64K pairs. -1 means no
// hint; values below -1 are treated as -1.
//
// Both cursors are closed on every exit path. If a handle panics mid-loop the
// cursors are closed first and the panic continues up the stack.
func Zip[T, U any](a View[T], b View[U], sizeHint int) (pairs []Pair[T, U], err error) {
	if sizeHint >= 0 {
		pairs = make([]Pair[T, U], 0, presize(sizeHint))
	}

	ca := a.Cursor()
	defer func() { err = release(err, &ca) }()
	cb := b.Cursor()
	defer func() { err = release(err, &cb) }()

	for ca.Next() && cb.Next() {
		pairs = append(pairs, Pair[T, U]{First: ca.Current(), Second: cb.Current()})
	}
	return pairs, errors.Join(ca.Err(), cb.Err())
}
