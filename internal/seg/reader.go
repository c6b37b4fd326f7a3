package seg

import (
	"bufio"
	"errors"
	"io"
)

// isDataLine reports whether a line holds a record: some graphic
// character before any '#'.
func isDataLine(line []byte) bool {
	for _, c := range line {
		if c == '#' {
			return false
		}
		if c > ' ' {
			return true
		}
	}
	return false
}

// Reader yields the records of one SEG file in order, enforcing that
// the file is sorted by (anchor name, anchor start). It holds a
// one-record lookahead so it can tell the caller when the anchor
// sequence name changes.
type Reader struct {
	br       *bufio.Reader
	s, t     Seg
	isNewSeq bool
}

// NewReader starts reading r, loading the first record.
func NewReader(r io.Reader) (*Reader, error) {
	rd := &Reader{br: bufio.NewReaderSize(r, 1<<16)}
	if err := rd.Next(); err != nil {
		return nil, err
	}
	return rd, nil
}

// More reports whether a current record is loaded.
func (r *Reader) More() bool { return len(r.s.Parts) > 0 }

// NewName is true for the first record and whenever the current
// record's anchor name differs from its predecessor's.
func (r *Reader) NewName() bool { return r.isNewSeq }

// Seg returns the current record. It stays valid until the next call
// to Next, and its line buffer is never reused; see Seg.Clone for
// keeping the parts beyond that.
func (r *Reader) Seg() *Seg { return &r.s }

// Next advances to the following record. After the last record,
// More() turns false.
func (r *Reader) Next() error {
	if err := r.readSeg(&r.t); err != nil {
		return err
	}
	if len(r.s.Parts) == 0 || len(r.t.Parts) == 0 {
		r.isNewSeq = true
	} else {
		c := NameCmp(&r.s, &r.t, 0)
		if c > 0 || (c == 0 && r.s.Beg0() > r.t.Beg0()) {
			return errors.New("input not sorted properly")
		}
		r.isNewSeq = c != 0
	}
	r.s, r.t = r.t, r.s
	return nil
}

// readSeg parses the next data line into s. At end of input, s is
// left with no parts.
func (r *Reader) readSeg(s *Seg) error {
	s.Parts = s.Parts[:0]
	s.Line = nil
	for {
		line, err := r.br.ReadBytes('\n')
		line = trimEOL(line)
		if isDataLine(line) {
			return parseSeg(line, s)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	return line
}
