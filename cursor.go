package foreach

import (
	"errors"
	"fmt"
	"log/slog"
)

// Cursor steps through one View. In memory mode it is a position over the
// window and never allocates; in sequence mode it forwards to the Handle
// opened by View.Cursor.
//
// A Cursor is single-use and single-goroutine. Close it when done, on every
// path; closing a memory cursor is a no-op.
type Cursor[T any] struct {
	h      Handle[T]
	mem    []T
	pos    int
	closed bool
}

// Next advances the cursor and reports whether an element is available.
func (c *Cursor[T]) Next() bool {
	if c.h != nil {
		if c.closed {
			return false
		}
		return c.h.Next()
	}
	if c.pos < len(c.mem) {
		c.pos++
	}
	return c.pos < len(c.mem)
}

// Current returns the element under the cursor. In memory mode it panics
// outside the window where the last Next returned true.
func (c *Cursor[T]) Current() T {
	if c.h != nil {
		return c.h.Current()
	}
	if c.pos < 0 || c.pos >= len(c.mem) {
		panic(fmt.Errorf("%w: position %d, length %d", ErrInvalidAccess, c.pos, len(c.mem)))
	}
	return c.mem[c.pos]
}

// Reset rewinds to before the first element.
func (c *Cursor[T]) Reset() {
	if c.h != nil {
		if !c.closed {
			c.h.Reset()
		}
		return
	}
	c.pos = -1
}

// Close releases the sequence handle. Only the first call reaches the
// handle; later calls return nil.
func (c *Cursor[T]) Close() error {
	if c.h == nil || c.closed {
		return nil
	}
	c.closed = true
	return c.h.Close()
}

// Err returns the error that ended a sequence traversal early, if the handle
// reports one.
func (c *Cursor[T]) Err() error {
	if e, ok := c.h.(errer); ok {
		return e.Err()
	}
	return nil
}

// release closes c and folds a close failure into err.
func release[T any](err error, c *Cursor[T]) error {
	cerr := c.Close()
	if cerr == nil {
		return err
	}
	Logger().Warn("foreach: sequence handle release failed",
		slog.String("handle", fmt.Sprintf("%T", c.h)),
		slog.Any("err", cerr))
	return errors.Join(err, cerr)
}
