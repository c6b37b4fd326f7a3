package segimport

import (
	"fmt"

	"github.com/mcfrith/seg-suite/internal/scan"
)

// psl converts PSL lines, including translated PSL, where block starts
// advance 3 coordinate units per length unit on one or both sides.
// The per-side multiplier is recovered from the last block: its
// strand-adjusted expected end minus its start, over its size.
func (im *Importer) psl(l *lineReader) error {
	var sizes, qAdj, tAdj []int64
	for l.next() {
		s := scan.New(l.line)
		first := s.Word()
		if !s.OK() || !isDigits(first) {
			continue // header lines of un-headerless PSL
		}
		for i := 0; i < 7; i++ {
			s.Word()
		}
		strand := s.Word()
		qName := s.Word()
		qSize := s.Int()
		qStart := s.Int()
		qEnd := s.Int()
		tName := s.Word()
		tSize := s.Int()
		tStart := s.Int()
		tEnd := s.Int()
		s.Int() // blockCount
		blockSizes := s.Word()
		qStarts := s.Word()
		tStarts := s.Word()
		if !s.OK() {
			return fmt.Errorf("bad PSL line: %s", l.line)
		}
		qStrand := strand[0]
		tStrand := byte('+')
		if len(strand) > 1 {
			tStrand = strand[1]
		}
		if len(strand) > 2 || !isStrandChar(qStrand) || !isStrandChar(tStrand) {
			return fmt.Errorf("unrecognized strand:\n%s", l.line)
		}

		sizes, qAdj, tAdj = sizes[:0], qAdj[:0], tAdj[:0]
		bs := scan.New(blockSizes)
		qs := scan.New(qStarts)
		ts := scan.New(tStarts)
		for {
			i := bs.Int()
			j := ts.Int()
			k := qs.Int()
			if !bs.OK() || !ts.OK() || !qs.OK() {
				break
			}
			if tStrand == '-' {
				j -= tSize
			}
			if qStrand == '-' {
				k -= qSize
			}
			sizes = append(sizes, i)
			tAdj = append(tAdj, j)
			qAdj = append(qAdj, k)
			bs.SkipOne()
			ts.SkipOne()
			qs.SkipOne()
		}
		if len(sizes) == 0 {
			continue
		}

		last := len(sizes) - 1
		tExpEnd := tEnd
		if tStrand == '-' {
			tExpEnd = -tStart
		}
		qExpEnd := qEnd
		if qStrand == '-' {
			qExpEnd = -qStart
		}
		tMul := lengthMultiplier(tExpEnd, tAdj[last], sizes[last])
		qMul := lengthMultiplier(qExpEnd, qAdj[last], sizes[last])
		if tMul == 0 || qMul == 0 {
			return fmt.Errorf("bad PSL line: %s", l.line)
		}

		im.alnNum++
		var alnPos int64
		for i := range sizes {
			if i > 0 {
				tGap := (tAdj[i] - tAdj[i-1] - sizes[i-1]*tMul) / tMul
				qGap := (qAdj[i] - qAdj[i-1] - sizes[i-1]*qMul) / qMul
				alnPos += sizes[i-1] + tGap + qGap
			}
			err := im.out.alnRecord(sizes[i], []emitPart{
				{name: tName, start: tAdj[i], letter: tMul},
				{name: qName, start: qAdj[i], letter: qMul},
			}, im.alnNum, alnPos)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// lengthMultiplier returns 1 or 3, or 0 if the last block's extent is
// not exactly 1 or 3 times its size.
func lengthMultiplier(expEnd, lastStart, lastSize int64) int64 {
	if lastSize <= 0 {
		return 0
	}
	extent := expEnd - lastStart
	mul := extent / lastSize
	if mul*lastSize != extent || (mul != 1 && mul != 3) {
		return 0
	}
	return mul
}

func isDigits(w []byte) bool {
	for _, c := range w {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(w) > 0
}

func isStrandChar(c byte) bool { return c == '+' || c == '-' }
