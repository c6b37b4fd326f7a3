package segimport

import (
	"bytes"
	"fmt"

	"github.com/mcfrith/seg-suite/internal/scan"
)

// bed converts BED lines: 3 columns up to the 12-column superset with
// block arrays. Records with a name column feed the gene-region
// filter.
func (im *Importer) bed(l *lineReader) error {
	var exons []exonRange
	for l.next() {
		s := scan.New(l.line)
		chrom := s.Word()
		if !s.OK() {
			continue
		}
		beg := s.Int()
		end := s.Int()
		if !s.OK() {
			return fmt.Errorf("bad BED line: %s", l.line)
		}
		name := s.Word()
		if !s.OK() {
			if err := im.out.single(end-beg, chrom, beg); err != nil {
				return err
			}
			continue
		}
		s.Word() // score
		strand := s.Word()
		isReverse := s.OK() && bytes.Equal(strand, []byte("-"))
		cdsBeg, cdsEnd := beg, beg
		if v := s.Int(); s.OK() {
			cdsBeg = v
		}
		if v := s.Int(); s.OK() {
			cdsEnd = v
		}
		s.Word() // itemRgb
		s.Word() // blockCount
		exonLens := s.Word()
		exonBegs := s.Word()
		exons = exons[:0]
		if s.OK() {
			lens := scan.New(exonLens)
			begs := scan.New(exonBegs)
			for {
				elen := lens.Int()
				ebeg := begs.Int()
				if !lens.OK() || !begs.OK() {
					break
				}
				exons = append(exons, exonRange{beg: beg + ebeg, end: beg + ebeg + elen})
				lens.SkipOne()
				begs.SkipOne()
			}
		} else {
			exons = append(exons, exonRange{beg: beg, end: end})
		}
		if err := im.gene(chrom, name, !isReverse, exons, cdsBeg, cdsEnd); err != nil {
			return err
		}
	}
	return nil
}
