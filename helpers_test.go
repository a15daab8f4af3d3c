package foreach

import "errors"

// countingSeq yields items and counts how often its handles are closed.
type countingSeq struct {
	items    []int
	closes   int
	opens    int
	panicAt  int // Next panics when it would reach this index; -1 never
	closeErr error
	stopErr  error // reported by Err once the items run out
}

func newCountingSeq(items ...int) *countingSeq {
	return &countingSeq{items: items, panicAt: -1}
}

func (s *countingSeq) Open() Handle[int] {
	s.opens++
	return &countingHandle{s: s, pos: -1}
}

type countingHandle struct {
	s   *countingSeq
	pos int
}

func (h *countingHandle) Next() bool {
	if h.pos < len(h.s.items) {
		h.pos++
	}
	if h.s.panicAt >= 0 && h.pos == h.s.panicAt {
		panic(errBoom)
	}
	return h.pos < len(h.s.items)
}

func (h *countingHandle) Current() int { return h.s.items[h.pos] }
func (h *countingHandle) Reset()       { h.pos = -1 }

func (h *countingHandle) Close() error {
	h.s.closes++
	return h.s.closeErr
}

func (h *countingHandle) Err() error {
	if h.pos >= len(h.s.items) {
		return h.s.stopErr
	}
	return nil
}

// sizedSeq reports its length up front.
type sizedSeq struct{ *countingSeq }

func (s sizedSeq) Len() int { return len(s.items) }

// copierSeq copies itself in bulk.
type copierSeq struct {
	*countingSeq
	bulk int
}

func (s *copierSeq) CopyTo(dst []int) (int, error) {
	s.bulk++
	return copy(dst, s.items), nil
}

var errBoom = errors.New("boom")

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
