package foreach

import "fmt"

// ToSlice copies every element of v, in traversal order, into a new slice of
// exactly the element count. The result never aliases the source.
func ToSlice[T any](v View[T]) (out []T, err error) {
	if v.seq == nil {
		out = make([]T, len(v.mem))
		copy(out, v.mem)
		return out, nil
	}
	size := 0
	if s, ok := v.seq.(Sized); ok {
		size = presize(s.Len())
	}
	out = make([]T, 0, size)

	c := v.Cursor()
	defer func() { err = release(err, &c) }()
	for c.Next() {
		out = append(out, c.Current())
	}
	return out, c.Err()
}

// maxPresize bounds capacity reserved from a length nobody has verified yet.
// Longer results grow by append.
const maxPresize = 1 << 16

func presize(n int) int {
	return max(0, min(n, maxPresize))
}

// CopyTo writes the elements of v to dst[0:n] where n is the element count.
// A dst shorter than n yields ErrOutOfRange. Memory views and sized
// sequences fail before writing anything; an unsized sequence that overruns
// dst leaves dst fully written with its first len(dst) elements.
func CopyTo[T any](v View[T], dst []T) (err error) {
	if v.seq == nil {
		if len(dst) < len(v.mem) {
			return fmt.Errorf("%w: destination length %d, source length %d", ErrOutOfRange, len(dst), len(v.mem))
		}
		copy(dst, v.mem)
		return nil
	}
	if s, ok := v.seq.(Sized); ok && s.Len() > len(dst) {
		return fmt.Errorf("%w: destination length %d, source length %d", ErrOutOfRange, len(dst), s.Len())
	}
	if cp, ok := v.seq.(Copier[T]); ok {
		_, err = cp.CopyTo(dst)
		return err
	}

	c := v.Cursor()
	defer func() { err = release(err, &c) }()
	i := 0
	for c.Next() {
		if i == len(dst) {
			return fmt.Errorf("%w: destination length %d exceeded", ErrOutOfRange, len(dst))
		}
		dst[i] = c.Current()
		i++
	}
	return c.Err()
}
