package seqbuf

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// DefaultCapacity is the number of slots used when no capacity is given.
const DefaultCapacity = 10

// ErrRange is matched by every error returned for a count outside [0, capacity].
var ErrRange = errors.New("seqbuf: count out of range")

var (
	_ io.WriterTo = (*Buffer)(nil)
	_ error       = (*RangeError)(nil)
)

// RangeError reports a requested count that does not fit the capacity.
type RangeError struct {
	Count    int
	Capacity int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("seqbuf: count %d out of range [0, %d]", e.Count, e.Capacity)
}

// Unwrap returns ErrRange.
func (e *RangeError) Unwrap() error {
	return ErrRange
}

func checkRange(n, capacity int) error {
	if n < 0 || n > capacity {
		return &RangeError{Count: n, Capacity: capacity}
	}
	return nil
}

// Buffer is a fixed-capacity sequence of integer slots owned by the caller.
// The zero value is not usable; use New.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	slots []int
	n     int
}

// New creates a buffer with the specified capacity.
// A non-positive capacity selects DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{slots: make([]int, capacity)}
}

// Cap returns the number of slots.
func (b *Buffer) Cap() int {
	return len(b.slots)
}

// Len returns the count of the last successful Fill.
func (b *Buffer) Len() int {
	return b.n
}

// Fill writes 0..n-1 into the first n slots. Slots at n and above keep
// whatever a previous, larger fill left there.
// If n is outside [0, Cap()] the buffer is left untouched and a
// *RangeError is returned.
func (b *Buffer) Fill(n int) error {
	if _, err := Generate(b.slots, n); err != nil {
		return err
	}
	b.n = n
	return nil
}

// Values returns a copy of the slots written by the last Fill.
func (b *Buffer) Values() []int {
	return append([]int(nil), b.slots[:b.n]...)
}

// Slots returns a copy of every slot, including stale ones.
func (b *Buffer) Slots() []int {
	return append([]int(nil), b.slots...)
}

// Reset zeroes every slot.
func (b *Buffer) Reset() {
	clear(b.slots)
	b.n = 0
}

// WriteTo implements io.WriterTo by writing Values to w, one per line.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	return WriteLines(w, b.slots[:b.n])
}

// Generate fills dst[:n] with 0..n-1 and returns it. len(dst) is the capacity;
// dst is not modified when n is out of range.
func Generate(dst []int, n int) ([]int, error) {
	if err := checkRange(n, len(dst)); err != nil {
		return nil, err
	}
	out := dst[:n]
	for i := range out {
		out[i] = i
	}
	return out, nil
}

// Sequence returns a DefaultCapacity array holding 0..n-1 followed by zeros.
func Sequence(n int) ([DefaultCapacity]int, error) {
	var arr [DefaultCapacity]int
	if _, err := Generate(arr[:], n); err != nil {
		return arr, err
	}
	return arr, nil
}

// WriteLines writes each value in decimal followed by a newline.
func WriteLines(w io.Writer, values []int) (int64, error) {
	buf := make([]byte, 0, 32*1024)
	var total int64
	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		n, err := w.Write(buf)
		if n < 0 || n > len(buf) {
			n = 0
			if err == nil {
				err = io.ErrShortWrite
			}
		}
		total += int64(n)
		if err != nil {
			return err
		}
		if n != len(buf) {
			return io.ErrShortWrite
		}
		buf = buf[:0]
		return nil
	}

	for _, v := range values {
		// room for any int64 plus sign and newline
		if cap(buf)-len(buf) < 21 {
			if err := flush(); err != nil {
				return total, err
			}
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, '\n')
	}
	return total, flush()
}
