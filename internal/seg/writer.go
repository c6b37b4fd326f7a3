package seg

import (
	"bufio"
	"io"
)

// Writer emits SEG lines. Both emit paths build each line backwards in
// one reusable scratch buffer: numbers are cheapest to format from
// their last digit, and the slice and join layouts share their tails.
type Writer struct {
	bw  *bufio.Writer
	buf []byte
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 1 << 16)}
}

// Flush writes out any buffered lines.
func (w *Writer) Flush() error { return w.bw.Flush() }

// writeLong formats x backwards into buf, ending just before e, and
// returns the position of its first byte.
func writeLong(buf []byte, e int, x int64) int {
	y := uint64(x)
	if x < 0 {
		y = -y
	}
	for {
		e--
		buf[e] = '0' + byte(y%10)
		y /= 10
		if y == 0 {
			break
		}
	}
	if x < 0 {
		e--
		buf[e] = '-'
	}
	return e
}

// writeName copies the name of part i of s backwards, ending just
// before e.
func writeName(buf []byte, e int, s *Seg, i int) int {
	name := s.Name(i)
	e -= len(name)
	copy(buf[e:], name)
	return e
}

// sliceHead writes "length \t name0 \t beg" for the [beg,end) slice of
// s's anchor.
func sliceHead(buf []byte, e int, s *Seg, beg, end int64) int {
	e = writeLong(buf, e, beg)
	e--
	buf[e] = '\t'
	e = writeName(buf, e, s, 0)
	e--
	buf[e] = '\t'
	e = writeLong(buf, e, end-beg)
	return e
}

// sliceTail writes the follower parts of s, shifted so the record
// starts at beg.
func sliceTail(buf []byte, e int, s *Seg, beg int64) int {
	offset := beg - s.Beg0()
	for i := len(s.Parts) - 1; i >= 1; i-- {
		e = writeLong(buf, e, s.Start(i)+offset)
		e--
		buf[e] = '\t'
		e = writeName(buf, e, s, i)
		e--
		buf[e] = '\t'
	}
	return e
}

func (w *Writer) grow(space int) {
	if cap(w.buf) < space {
		w.buf = make([]byte, space)
	}
	w.buf = w.buf[:cap(w.buf)]
}

// SegSlice writes the [beg,end) slice of s, shifting every follower by
// the same amount as the anchor.
func (w *Writer) SegSlice(s *Seg, beg, end int64) error {
	w.grow(len(s.Line) + 32*(len(s.Parts)+1))
	e := len(w.buf)
	e--
	w.buf[e] = '\n'
	e = sliceTail(w.buf, e, s, beg)
	e = sliceHead(w.buf, e, s, beg, end)
	_, err := w.bw.Write(w.buf[e:])
	return err
}

// SegJoin writes the join of s and t over [beg,end): s's slice head,
// then s's followers, then t's followers. t's anchor is dropped; after
// alignment it is identical to s's.
func (w *Writer) SegJoin(s, t *Seg, beg, end int64) error {
	n := len(s.Parts)
	if len(t.Parts) > n {
		n = len(t.Parts)
	}
	w.grow(len(s.Line) + len(t.Line) + 32*n)
	e := len(w.buf)
	e--
	w.buf[e] = '\n'
	e = sliceTail(w.buf, e, t, beg)
	e = sliceTail(w.buf, e, s, beg)
	e = sliceHead(w.buf, e, s, beg, end)
	_, err := w.bw.Write(w.buf[e:])
	return err
}
