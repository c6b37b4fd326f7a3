// Package seg holds the SEG record type and its sorted reader and
// writer. A SEG line is a length followed by one or more
// (sequence name, signed start) pairs, tab separated. A negative start
// means the segment is on the reverse strand, with the magnitude
// measured from the right end of the sequence.
package seg

import (
	"bytes"
	"fmt"

	"github.com/mcfrith/seg-suite/internal/scan"
)

// Part is one (sequence name, start) pair of a record. The name is
// stored as offsets into the record's own line buffer.
type Part struct {
	NameBeg int
	NameLen int
	Start   int64
}

// Seg is one SEG record. Parts[0] is the anchor; End0 caches the
// anchor's end coordinate.
type Seg struct {
	Line  []byte
	End0  int64
	Parts []Part
}

// Beg0 returns the anchor start.
func (s *Seg) Beg0() int64 { return s.Parts[0].Start }

// Start returns the start of part i.
func (s *Seg) Start(i int) int64 { return s.Parts[i].Start }

// Name returns the sequence name of part i, aliasing the record line.
func (s *Seg) Name(i int) []byte {
	p := s.Parts[i]
	return s.Line[p.NameBeg : p.NameBeg+p.NameLen]
}

// Clone returns a copy whose Parts no longer share backing storage
// with the reader that produced s. The line itself is immutable once
// read, so it is shared.
func (s *Seg) Clone() Seg {
	return Seg{Line: s.Line, End0: s.End0, Parts: append([]Part(nil), s.Parts...)}
}

// NameCmp compares the named sequence of part i of two records.
func NameCmp(x, y *Seg, i int) int {
	return bytes.Compare(x.Name(i), y.Name(i))
}

// parseSeg fills s from one data line. s keeps line as its backing
// buffer.
func parseSeg(line []byte, s *Seg) error {
	s.Line = line
	s.Parts = s.Parts[:0]
	sc := scan.New(line)
	length := sc.Int()
	for {
		nameBeg, nameEnd := sc.WordRange()
		if !sc.OK() {
			break
		}
		start := sc.Int()
		if !sc.OK() {
			return fmt.Errorf("bad SEG line: %s", line)
		}
		s.Parts = append(s.Parts, Part{NameBeg: nameBeg, NameLen: nameEnd - nameBeg, Start: start})
	}
	if len(s.Parts) == 0 {
		return fmt.Errorf("bad SEG line: %s", line)
	}
	s.End0 = s.Beg0() + length
	return nil
}
