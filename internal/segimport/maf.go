package segimport

import (
	"fmt"

	"github.com/mcfrith/seg-suite/internal/scan"
)

// mafRow is one "s" line of a MAF alignment block. letterLength and
// lengthPerLetter reconcile protein and DNA coordinates in translated
// alignments: a row whose aligned letters each cover 3 positions has
// letterLength 3, and a row whose positions each cover 3 letters has
// lengthPerLetter 3.
type mafRow struct {
	line            []byte
	name            []byte
	start           int64
	seq             []byte
	letterLength    int64
	lengthPerLetter int64
}

// maf converts MAF alignment blocks: "s" lines accumulate until a
// non-graphic line ends the block.
func (im *Importer) maf(l *lineReader) error {
	var rows []mafRow
	numOfRows := 0
	for l.next() {
		if len(l.line) > 0 && l.line[0] == 's' {
			numOfRows++
			if len(rows) < numOfRows {
				rows = append(rows, mafRow{})
			}
			r := &rows[numOfRows-1]
			r.line = append(r.line[:0], l.line...)
		} else if len(l.line) == 0 || l.line[0] <= ' ' {
			if numOfRows > 0 {
				im.alnNum++
				if err := im.oneMaf(rows[:numOfRows]); err != nil {
					return err
				}
			}
			numOfRows = 0
		}
	}
	if numOfRows > 0 {
		im.alnNum++
		return im.oneMaf(rows[:numOfRows])
	}
	return nil
}

// oneMaf sweeps the alignment columns of one block, writing a record
// for every maximal gapless run.
func (im *Importer) oneMaf(rows []mafRow) error {
	alnLen := 0
	lenDiv := int64(1)
	for i := range rows {
		r := &rows[i]
		s := scan.New(r.line)
		s.Word() // the "s"
		r.name = s.Word()
		r.start = s.Int()
		span := s.Int()
		strand := s.Word()
		seqLength := s.Int()
		r.seq = s.Word()
		if !s.OK() {
			return fmt.Errorf("bad MAF line: %s", r.line)
		}
		if i == 0 {
			alnLen = len(r.seq)
		} else if len(r.seq) != alnLen {
			return fmt.Errorf("unequal alignment length:\n%s", r.line)
		}
		letters, isShifty := countMafLetters(r.seq)
		r.letterLength = 1
		if isShifty || letters < span {
			r.letterLength = 3
		}
		r.lengthPerLetter = 1
		if letters > span {
			r.lengthPerLetter = 3
			lenDiv = 3
		}
		if len(strand) == 1 && strand[0] == '-' {
			r.start -= seqLength
		}
		r.start *= r.lengthPerLetter
	}

	var length int64
	for alnPos := 0; alnPos < alnLen; alnPos++ {
		if isGaplessColumn(rows, alnPos) {
			length++
		} else {
			if length > 0 {
				if err := im.mafSegment(length, rows, lenDiv, int64(alnPos)); err != nil {
					return err
				}
			}
			length = 0
		}
		for i := range rows {
			r := &rows[i]
			switch r.seq[alnPos] {
			case '/':
				r.start--
			case '\\':
				r.start++
			case '-':
			default:
				r.start += r.letterLength
			}
		}
	}
	if length > 0 {
		return im.mafSegment(length, rows, lenDiv, int64(alnLen))
	}
	return nil
}

// mafSegment writes the gapless run of the given column count ending
// at alnPos. Starts and lengths are scaled back into each row's own
// coordinate units.
func (im *Importer) mafSegment(length int64, rows []mafRow, lenDiv, alnPos int64) error {
	parts := make([]emitPart, len(rows))
	for i := range rows {
		r := &rows[i]
		parts[i] = emitPart{
			name:   r.name,
			start:  (r.start - length*r.letterLength) / r.lengthPerLetter,
			letter: r.letterLength * lenDiv / r.lengthPerLetter,
		}
	}
	return im.out.alnRecord(length/lenDiv, parts, im.alnNum, (alnPos-length)/lenDiv)
}

// countMafLetters counts non-gap symbols, and reports whether the row
// contains the frameshift symbols / or \.
func countMafLetters(seq []byte) (letters int64, isShifty bool) {
	for _, c := range seq {
		switch c {
		case '-':
		case '/', '\\':
			isShifty = true
		default:
			letters++
		}
	}
	return letters, isShifty
}

func isGaplessColumn(rows []mafRow, alnPos int) bool {
	for i := range rows {
		if rows[i].seq[alnPos] == '-' {
			return false
		}
	}
	return true
}
