package segimport

import (
	"fmt"

	"github.com/mcfrith/seg-suite/internal/scan"
)

// gff converts 8-column GFF lines. Coordinates are 1-based and closed
// on both ends. The source and feature columns are read as whole
// tab-separated fields: some dialects put spaces in them.
func (im *Importer) gff(l *lineReader) error {
	for l.next() {
		s := scan.New(l.line)
		seqname := s.Word()
		if !s.OK() || seqname[0] == '#' {
			continue
		}
		s.Field() // source
		s.Field() // feature
		beg := s.Int()
		end := s.Int()
		s.Word() // score
		strand := s.Word()
		if !s.OK() {
			return fmt.Errorf("bad GFF line: %s", l.line)
		}
		beg-- // convert from 1-based to 0-based coordinate
		size := end - beg
		if len(strand) == 1 && strand[0] == '-' {
			beg = -end
		}
		if err := im.out.single(size, seqname, beg); err != nil {
			return err
		}
	}
	return nil
}
