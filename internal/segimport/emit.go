package segimport

import (
	"bufio"
	"io"
	"strconv"
)

// emitPart is one (name, start) column pair of a record about to be
// written. letter is the part's letter length: how many coordinate
// units one unit of the record length covers on that sequence. It is 1
// except for translated alignments.
type emitPart struct {
	name   []byte
	suffix string
	start  int64
	letter int64
}

// emitter writes SEG records, applying forward-segment flipping and
// the optional alignment columns.
type emitter struct {
	bw      *bufio.Writer
	buf     []byte
	forward int
	withAln bool
}

func newEmitter(opts Options, w io.Writer) *emitter {
	return &emitter{
		bw:      bufio.NewWriterSize(w, 1<<16),
		forward: opts.Forward,
		withAln: opts.Alignments,
	}
}

// record writes one SEG line. If the forward-segment's start is
// negative, the whole record is pivoted: every start becomes
// -(start + length*letter), which re-anchors each part to the other
// end of its sequence without moving it.
func (e *emitter) record(length int64, parts []emitPart) error {
	return e.write(length, parts, -1, 0)
}

// alnRecord is record plus alignment number/position columns, written
// only when -a is on.
func (e *emitter) alnRecord(length int64, parts []emitPart, alnNum, alnPos int64) error {
	return e.write(length, parts, alnNum, alnPos)
}

func (e *emitter) write(length int64, parts []emitPart, alnNum, alnPos int64) error {
	n := e.forward
	if n >= 1 && n <= len(parts) && parts[n-1].start < 0 {
		for i := range parts {
			parts[i].start = -(parts[i].start + length*parts[i].letter)
		}
	}
	b := e.buf[:0]
	b = strconv.AppendInt(b, length, 10)
	for _, p := range parts {
		b = append(b, '\t')
		b = append(b, p.name...)
		b = append(b, p.suffix...)
		b = append(b, '\t')
		b = strconv.AppendInt(b, p.start, 10)
	}
	if alnNum >= 0 && e.withAln {
		b = append(b, '\t')
		b = strconv.AppendInt(b, alnNum, 10)
		b = append(b, '\t')
		b = strconv.AppendInt(b, alnPos, 10)
	}
	b = append(b, '\n')
	e.buf = b
	_, err := e.bw.Write(b)
	return err
}

// pair writes a two-part record with letter length 1 on both sides.
func (e *emitter) pair(length int64, name1 []byte, start1 int64, name2 []byte, start2 int64) error {
	return e.record(length, []emitPart{
		{name: name1, start: start1, letter: 1},
		{name: name2, start: start2, letter: 1},
	})
}

// single writes a one-part record.
func (e *emitter) single(length int64, name []byte, start int64) error {
	return e.record(length, []emitPart{{name: name, start: start, letter: 1}})
}
