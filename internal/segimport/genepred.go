package segimport

import (
	"bytes"
	"fmt"

	"github.com/mcfrith/seg-suite/internal/scan"
)

// genePred converts genePred lines, tolerating the optional leading
// "bin" column: if the third field is not a strand, every column is
// assumed to be shifted right by one.
func (im *Importer) genePred(l *lineReader) error {
	var exons []exonRange
	for l.next() {
		s := scan.New(l.line)
		name := s.Word()
		if !s.OK() {
			continue
		}
		chrom := s.Word()
		strand := s.Word()
		if !isStrand(strand) {
			name = chrom
			chrom = strand
			strand = s.Word()
		}
		s.Int() // txStart
		s.Int() // txEnd
		cdsBeg := s.Int()
		cdsEnd := s.Int()
		s.Int() // exonCount
		exonBegs := s.Word()
		exonEnds := s.Word()
		if !s.OK() {
			return fmt.Errorf("bad genePred line: %s", l.line)
		}
		exons = exons[:0]
		begs := scan.New(exonBegs)
		ends := scan.New(exonEnds)
		for {
			beg := begs.Int()
			end := ends.Int()
			if !begs.OK() || !ends.OK() {
				break
			}
			exons = append(exons, exonRange{beg: beg, end: end})
			begs.SkipOne()
			ends.SkipOne()
		}
		isForward := bytes.Equal(strand, []byte("+"))
		if err := im.gene(chrom, name, isForward, exons, cdsBeg, cdsEnd); err != nil {
			return err
		}
	}
	return nil
}

func isStrand(w []byte) bool {
	return len(w) == 1 && (w[0] == '+' || w[0] == '-')
}
