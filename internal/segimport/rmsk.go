package segimport

import (
	"bytes"

	"github.com/mcfrith/seg-suite/internal/scan"
)

// rmsk converts RepeatMasker annotations. Two schemas are tried:
// RepeatMasker .out (1-based begin, no bin column) and the UCSC rmsk
// table (leading bin column, 0-based, extra repFamily column). Lines
// fitting neither, such as the .out column headers, are skipped.
func (im *Importer) rmsk(l *lineReader) error {
	var repName []byte
	for l.next() {
		s := scan.New(l.line)
		for i := 0; i < 4; i++ {
			s.Word()
		}
		qName := s.Word()
		beg := s.Int()
		end := s.Int()
		s.Word() // left
		strand := s.Word()
		rName := s.Word()
		rType := s.Word()
		var rType2 []byte
		if s.OK() {
			beg-- // .out begins are 1-based
		} else {
			t := scan.New(l.line)
			for i := 0; i < 5; i++ {
				t.Word()
			}
			qName = t.Word()
			beg = t.Int()
			end = t.Int()
			t.Word()
			strand = t.Word()
			rName = t.Word()
			rType = t.Word()
			rType2 = t.Word()
			if !t.OK() {
				continue
			}
		}
		repName = append(repName[:0], rName...)
		repName = append(repName, '#')
		repName = append(repName, rType...)
		if len(rType2) > 0 && !bytes.Equal(rType2, rType) {
			repName = append(repName, '/')
			repName = append(repName, rType2...)
		}
		repStart := int64(0)
		if !(len(strand) == 1 && strand[0] == '+') {
			repStart = beg - end
		}
		if err := im.out.pair(end-beg, qName, beg, repName, repStart); err != nil {
			return err
		}
	}
	return nil
}
