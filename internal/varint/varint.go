// Package varint holds the LEB128 unsigned varint helpers shared by the
// stream codecs.
package varint

import (
	"errors"
	"io"
)

// MaxLen is the longest encoding of a uint64.
const MaxLen = 10

// ErrOverflow reports an encoding longer than MaxLen bytes.
var ErrOverflow = errors.New("varint: overflows uint64")

// Append appends x as unsigned LEB128: seven bits per byte, low group first,
// high bit set on every byte but the last. Same wire form as
// binary.AppendUvarint, built in a stack scratch so dst grows at most once.
func Append(dst []byte, x uint64) []byte {
	var scratch [MaxLen]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// Read decodes a varint from b returning value and bytes consumed. It
// returns 0, 0 when b ends mid-value or the value overflows uint64.
func Read(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		if i == MaxLen-1 && c > 1 {
			return 0, 0
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}

// ReadFrom decodes one varint from r. A clean end of input before the first
// byte returns io.EOF; an end mid-value returns io.ErrUnexpectedEOF.
func ReadFrom(r io.ByteReader) (uint64, error) {
	var x uint64
	var s uint
	for i := 0; i < MaxLen; i++ {
		c, err := r.ReadByte()
		if err != nil {
			if i > 0 && err == io.EOF {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if i == MaxLen-1 && c > 1 {
			return 0, ErrOverflow
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, nil
		}
		s += 7
	}
	return 0, ErrOverflow
}
