package segimport

import (
	"fmt"

	"github.com/mcfrith/seg-suite/internal/scan"
)

// lastTab converts LAST tabular output. The blocks column alternates
// aligned lengths with colon-separated gap pairs; a declared span that
// the blocks do not add up to means the alignment is translated, which
// this format cannot express in SEG.
func (im *Importer) lastTab(l *lineReader) error {
	for l.next() {
		s := scan.New(l.line)
		score := s.Word()
		if !s.OK() || score[0] == '#' {
			continue
		}
		rName := s.Word()
		rBeg := s.Int()
		rSpan := s.Int()
		rStrand := s.Word()
		rSeqLength := s.Int()
		qName := s.Word()
		qBeg := s.Int()
		qSpan := s.Int()
		qStrand := s.Word()
		qSeqLength := s.Int()
		blocks := s.Word()
		if !s.OK() {
			return fmt.Errorf("bad lastTab line: %s", l.line)
		}
		if len(rStrand) == 1 && rStrand[0] == '-' {
			rBeg -= rSeqLength
		}
		rEnd := rBeg + rSpan
		if len(qStrand) == 1 && qStrand[0] == '-' {
			qBeg -= qSeqLength
		}
		qEnd := qBeg + qSpan
		im.alnNum++
		var alnPos int64
		b := scan.New(blocks)
		for {
			x := b.Int()
			if !b.OK() {
				return fmt.Errorf("bad lastTab line: %s", l.line)
			}
			c := b.Byte()
			if c == ':' {
				y := b.Int()
				if !b.OK() {
					return fmt.Errorf("bad lastTab line: %s", l.line)
				}
				rBeg += x
				qBeg += y
				alnPos += x + y
				b.Byte()
			} else {
				err := im.out.alnRecord(x, []emitPart{
					{name: rName, start: rBeg, letter: 1},
					{name: qName, start: qBeg, letter: 1},
				}, im.alnNum, alnPos)
				if err != nil {
					return err
				}
				rBeg += x
				qBeg += x
				alnPos += x
			}
			if !b.OK() {
				break
			}
		}
		if rBeg != rEnd || qBeg != qEnd { // catches translated alignments
			return fmt.Errorf("failed on this line:\n%s", l.line)
		}
	}
	return nil
}
