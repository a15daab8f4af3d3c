// Package foreach provides a single cursor type over two very different
// element sources: an opaque Sequence that produces values one at a time and
// may hold resources, or a contiguous memory window over a caller-owned slice.
//
// A View is a value type. It never owns the elements it exposes and never
// extends the lifetime of the memory or sequence behind it. Build it right
// before a traversal, use it synchronously, and drop it:
//
//	v, err := foreach.OfRange(coords, 4, 16)
//	if err != nil {
//		return err
//	}
//	c := v.Cursor()
//	defer c.Close()
//	for c.Next() {
//		use(c.Current())
//	}
//
// Views and Cursors must not be stored in long-lived structures, captured by
// closures that run later, or shared between goroutines. Nothing in this
// package is synchronized.
//
// Memory-mode traversal does not allocate. The algorithms ToSlice, CopyTo and
// Zip are written once against the cursor and behave the same for both modes;
// only ToSlice and Zip allocate, and only for their result.
package foreach
