package varstream

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/foreach"
	"github.com/rawbytedev/foreach/internal/varint"
)

// Stream is a decoded frame. It knows its length up front, so materializing
// it allocates once. Every traversal opens its own zstd decoder, which is
// released when the cursor is closed.
type Stream struct {
	payload []byte
	count   int
}

// Len returns the number of values in the frame.
func (s *Stream) Len() int { return s.count }

func (s *Stream) String() string {
	return fmt.Sprintf("varstream.Stream[%d values, %d bytes]", s.count, len(s.payload))
}

// Open starts a traversal. Decoder setup failures surface through the
// handle's Err after the first Next.
func (s *Stream) Open() foreach.Handle[uint64] {
	h := &handle{s: s}
	if len(s.payload) == 0 {
		return h
	}
	dec, err := zstd.NewReader(bytes.NewReader(s.payload), zstd.WithDecoderConcurrency(1))
	if err != nil {
		h.err = err
		return h
	}
	h.dec = dec
	h.br = bufio.NewReader(dec)
	return h
}

// CopyTo decodes the whole frame in one pass into dst.
func (s *Stream) CopyTo(dst []uint64) (int, error) {
	if s.count > len(dst) {
		return 0, fmt.Errorf("%w: destination length %d, stream length %d", foreach.ErrOutOfRange, len(dst), s.count)
	}
	if len(s.payload) == 0 {
		return 0, s.checkCount(0)
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return 0, err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(s.payload, make([]byte, 0, min(s.count, maxHint)*2))
	if err != nil {
		return 0, err
	}
	n := 0
	for off := 0; off < len(raw); n++ {
		x, k := varint.Read(raw[off:])
		if k == 0 {
			return n, fmt.Errorf("%w: value %d", ErrTruncated, n)
		}
		if n == s.count {
			return n, s.checkCount(n + 1)
		}
		dst[n] = x
		off += k
	}
	return n, s.checkCount(n)
}

func (s *Stream) checkCount(n int) error {
	if n != s.count {
		return fmt.Errorf("%w: decoded %d, header says %d", ErrCount, n, s.count)
	}
	return nil
}

type handle struct {
	s   *Stream
	dec *zstd.Decoder
	br  *bufio.Reader
	cur uint64
	n   int
	err error
}

func (h *handle) Next() bool {
	if h.err != nil {
		return false
	}
	if h.dec == nil {
		h.err = h.s.checkCount(0)
		return false
	}
	x, err := varint.ReadFrom(h.br)
	if err == io.EOF {
		h.err = h.s.checkCount(h.n)
		return false
	}
	if err != nil {
		h.err = err
		return false
	}
	if h.n == h.s.count {
		h.err = h.s.checkCount(h.n + 1)
		return false
	}
	h.cur = x
	h.n++
	return true
}

func (h *handle) Current() uint64 { return h.cur }

func (h *handle) Reset() {
	if h.dec == nil {
		if len(h.s.payload) == 0 {
			h.cur, h.n, h.err = 0, 0, nil
		}
		return
	}
	h.cur, h.n, h.err = 0, 0, nil
	if err := h.dec.Reset(bytes.NewReader(h.s.payload)); err != nil {
		h.err = err
		return
	}
	h.br.Reset(h.dec)
}

func (h *handle) Close() error {
	if h.dec != nil {
		h.dec.Close()
		h.dec = nil
	}
	return nil
}

func (h *handle) Err() error { return h.err }
