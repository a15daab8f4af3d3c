package foreach

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSliceMemoryIsCopy(t *testing.T) {
	buf := []int{1, 2, 3}
	got, err := ToSlice(Of(buf))
	require.NoError(t, err)
	require.Equal(t, buf, got)
	buf[0] = 99
	require.Equal(t, 1, got[0])
	require.Equal(t, 3, cap(got))
}

func TestToSliceEmpty(t *testing.T) {
	got, err := ToSlice(View[int]{})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)

	s := newCountingSeq()
	got, err = ToSlice(OfSequence[int](s))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
	require.Equal(t, 1, s.closes)
}

func TestToSliceSequenceOrder(t *testing.T) {
	condition := func(items []int) bool {
		s := newCountingSeq(items...)
		got, err := ToSlice(OfSequence[int](s))
		if err != nil || s.closes != 1 {
			return false
		}
		if len(items) == 0 {
			return len(got) == 0
		}
		return assert.ObjectsAreEqual(items, got)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestToSliceSizedPresizes(t *testing.T) {
	s := sizedSeq{newCountingSeq(4, 5, 6, 7, 8)}
	got, err := ToSlice(OfSequence[int](s))
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6, 7, 8}, got)
	require.Equal(t, 5, cap(got))
}

// inflatedSeq claims far more elements than it yields.
type inflatedSeq struct{ *countingSeq }

func (inflatedSeq) Len() int { return 1 << 50 }

func TestToSliceBoundsPresize(t *testing.T) {
	s := inflatedSeq{newCountingSeq(1, 2)}
	require.NotPanics(t, func() {
		got, err := ToSlice(OfSequence[int](s))
		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, got)
		require.LessOrEqual(t, cap(got), maxPresize)
	})
}

func TestToSliceJoinsErrors(t *testing.T) {
	s := newCountingSeq(1, 2)
	s.stopErr = errBoom
	got, err := ToSlice(OfSequence[int](s))
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, []int{1, 2}, got)

	closeErr := assert.AnError
	s = newCountingSeq(1)
	s.closeErr = closeErr
	_, err = ToSlice(OfSequence[int](s))
	require.ErrorIs(t, err, closeErr)
}

func TestCopyToMemory(t *testing.T) {
	src := []int{1, 2, 3}
	dst := make([]int, 3)
	require.NoError(t, CopyTo(Of(src), dst))
	require.Equal(t, src, dst)

	wide := []int{0, 0, 0, 0, -1}
	require.NoError(t, CopyTo(Of(src), wide))
	require.Equal(t, []int{1, 2, 3, 0, -1}, wide)
}

func TestCopyToShortDestination(t *testing.T) {
	dst := []int{-1, -1}
	err := CopyTo(Of([]int{1, 2, 3}), dst)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Equal(t, []int{-1, -1}, dst)

	s := sizedSeq{newCountingSeq(1, 2, 3)}
	err = CopyTo(OfSequence[int](s), dst)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Equal(t, []int{-1, -1}, dst)
	require.Zero(t, s.opens)
}

func TestCopyToUnsizedSequenceWritesPrefix(t *testing.T) {
	s := newCountingSeq(1, 2, 3)
	dst := make([]int, 2)
	err := CopyTo(OfSequence[int](s), dst)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Equal(t, []int{1, 2}, dst)
	require.Equal(t, 1, s.closes)
}

func TestCopyToSequence(t *testing.T) {
	s := newCountingSeq(5, 6)
	dst := make([]int, 3)
	require.NoError(t, CopyTo(OfSequence[int](s), dst))
	require.Equal(t, []int{5, 6, 0}, dst)
	require.Equal(t, 1, s.closes)
}

func TestCopyToUsesCopier(t *testing.T) {
	s := &copierSeq{countingSeq: newCountingSeq(1, 2, 3)}
	dst := make([]int, 3)
	require.NoError(t, CopyTo(OfSequence[int](s), dst))
	require.Equal(t, []int{1, 2, 3}, dst)
	require.Equal(t, 1, s.bulk)
	require.Zero(t, s.opens)
}
