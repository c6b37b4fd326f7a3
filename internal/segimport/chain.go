package segimport

import (
	"bytes"
	"fmt"

	"github.com/mcfrith/seg-suite/internal/scan"
)

// chain converts UCSC chain files. A header line sets the current
// target and query positions (negative on the reverse strand); each
// following numeric line is one aligned block, optionally followed by
// the gap sizes leading to the next block.
func (im *Importer) chain(l *lineReader) error {
	var header []byte // owned copy of the current chain header
	var tName, qName []byte
	var tPos, qPos int64
	for l.next() {
		s := scan.New(l.line)
		word := s.Word()
		if !s.OK() || word[0] == '#' {
			continue
		}
		if bytes.Equal(word, []byte("chain")) {
			header = append(header[:0], l.line...)
			t := scan.New(header)
			t.Word() // chain
			t.Word() // score
			tName = t.Word()
			tSize := t.Int()
			tStrand := t.Word()
			tPos = t.Int()
			t.Word() // tEnd
			qName = t.Word()
			qSize := t.Int()
			qStrand := t.Word()
			qPos = t.Int()
			if !t.OK() {
				return fmt.Errorf("bad CHAIN line: %s", header)
			}
			if len(tStrand) == 1 && tStrand[0] == '-' {
				tPos -= tSize
			}
			if len(qStrand) == 1 && qStrand[0] == '-' {
				qPos -= qSize
			}
			continue
		}
		t := scan.New(l.line)
		size := t.Int()
		if !t.OK() {
			return fmt.Errorf("bad CHAIN line: %s", l.line)
		}
		if err := im.out.pair(size, tName, tPos, qName, qPos); err != nil {
			return err
		}
		tInc := t.Int()
		qInc := t.Int()
		if t.OK() {
			tPos += size + tInc
			qPos += size + qInc
		}
	}
	return nil
}
