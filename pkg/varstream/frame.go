// Package varstream stores uint64 values as a zstd-compressed run of
// varints and reads them back as a foreach.Sequence.
//
// Frame layout:
//
//	magic  uint32 LE  "FEVS"
//	flags  byte
//	count  uvarint    number of values
//	data   zstd       concatenated uvarints
//	crc    uint32 LE  CRC32 (IEEE) of everything before it, when FlagChecksum is set
package varstream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"log/slog"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/foreach"
	"github.com/rawbytedev/foreach/internal/varint"
)

const (
	Magic = 0x53564546 // "FEVS"

	FlagChecksum = 0x01

	headerSize = 5 // magic + flags
	crcSize    = 4

	// maxHint bounds buffer reservations made from a length that has not
	// been decoded yet.
	maxHint = 1 << 16
)

var (
	ErrBadMagic  = errors.New("varstream: bad magic")
	ErrChecksum  = errors.New("varstream: checksum mismatch")
	ErrTruncated = errors.New("varstream: truncated frame")
	ErrCount     = errors.New("varstream: value count mismatch")
)

// Options controls encoding.
type Options struct {
	// Level is the zstd encoder level; zero means zstd.SpeedDefault.
	Level zstd.EncoderLevel
	// SkipChecksum omits the trailing CRC32.
	SkipChecksum bool
}

// Encode walks v once and returns a frame holding its values.
func Encode(v foreach.View[uint64], opts Options) (frame []byte, err error) {
	hint := max(0, min(v.Len(), maxHint))
	raw := make([]byte, 0, hint*2)
	count := 0

	c := v.Cursor()
	defer func() {
		if cerr := c.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	for c.Next() {
		raw = varint.Append(raw, c.Current())
		count++
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	level := opts.Level
	if level == 0 {
		level = zstd.SpeedDefault
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	var flags byte
	if !opts.SkipChecksum {
		flags |= FlagChecksum
	}
	frame = binary.LittleEndian.AppendUint32(make([]byte, 0, headerSize+varint.MaxLen+len(raw)/2+crcSize), Magic)
	frame = append(frame, flags)
	frame = varint.Append(frame, uint64(count))
	frame = enc.EncodeAll(raw, frame)
	if flags&FlagChecksum != 0 {
		frame = binary.LittleEndian.AppendUint32(frame, crc32.ChecksumIEEE(frame))
	}
	return frame, nil
}

// Decode validates frame and returns a Stream over it. The Stream aliases
// frame; the caller must keep it unchanged while the Stream is in use.
func Decode(frame []byte) (*Stream, error) {
	if len(frame) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(frame))
	}
	if m := binary.LittleEndian.Uint32(frame); m != Magic {
		return nil, fmt.Errorf("%w: %#x", ErrBadMagic, m)
	}
	flags := frame[4]
	end := len(frame)
	if flags&FlagChecksum != 0 {
		if end < headerSize+crcSize {
			return nil, fmt.Errorf("%w: no room for checksum", ErrTruncated)
		}
		end -= crcSize
		want := binary.LittleEndian.Uint32(frame[end:])
		if got := crc32.ChecksumIEEE(frame[:end]); got != want {
			return nil, fmt.Errorf("%w: got %#x, want %#x", ErrChecksum, got, want)
		}
	}
	count, n := varint.Read(frame[headerSize:end])
	if n == 0 {
		return nil, fmt.Errorf("%w: count", ErrTruncated)
	}
	if count > math.MaxInt {
		return nil, fmt.Errorf("%w: header count %d", ErrCount, count)
	}
	s := &Stream{payload: frame[headerSize+n : end], count: int(count)}
	foreach.Logger().Debug("varstream: frame decoded",
		slog.Int("count", s.count),
		slog.Int("payload", len(s.payload)),
		slog.Bool("checksum", flags&FlagChecksum != 0))
	return s, nil
}
