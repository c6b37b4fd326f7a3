package segimport

import (
	"fmt"

	"github.com/biogo/hts/sam"

	"github.com/mcfrith/seg-suite/internal/scan"
)

// segmentPair is one gapless block of a SAM alignment.
type segmentPair struct {
	rStart, qStart, length int64
}

// sam converts mapped SAM records, one SEG record per gapless CIGAR
// block. Mates get a /1 or /2 suffix on the query name.
func (im *Importer) sam(l *lineReader) error {
	var blocks []segmentPair
	for l.next() {
		if len(l.line) > 0 && l.line[0] == '@' {
			continue
		}
		s := scan.New(l.line)
		qName := s.Word()
		if !s.OK() {
			continue
		}
		flag := s.Int()
		rName := s.Word()
		rPos := s.Int()
		s.Word() // mapq
		cigar := s.Word()
		if !s.OK() {
			return fmt.Errorf("bad SAM line: %s", l.line)
		}
		if flag&4 != 0 { // unmapped
			continue
		}
		isReverse := flag&16 != 0
		suffix := ""
		if flag&64 != 0 {
			suffix = "/1"
		} else if flag&128 != 0 {
			suffix = "/2"
		}
		rPos--
		var qPos int64
		var err error
		blocks, rPos, qPos, err = cigarBlocks(blocks[:0], cigar, rPos, qPos)
		if err != nil {
			return fmt.Errorf("bad SAM line: %s", l.line)
		}
		for _, b := range blocks {
			qStart := b.qStart
			if isReverse {
				qStart -= qPos
			}
			err := im.out.record(b.length, []emitPart{
				{name: rName, start: b.rStart, letter: 1},
				{name: qName, suffix: suffix, start: qStart, letter: 1},
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// cigarBlocks walks a CIGAR string, merging M/=/X runs into blocks and
// advancing the reference and query positions over the gap operators.
// Other operators (P, B) are ignored. It returns the blocks and the
// final positions; the final query position is the read length
// consumed.
func cigarBlocks(blocks []segmentPair, cigar []byte, rPos, qPos int64) ([]segmentPair, int64, int64, error) {
	if len(cigar) == 1 && cigar[0] == '*' {
		return blocks, rPos, qPos, nil
	}
	ops, err := sam.ParseCigar(cigar)
	if err != nil {
		return blocks, rPos, qPos, err
	}
	var length int64
	for _, co := range ops {
		size := int64(co.Len())
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
			length += size
		case sam.CigarDeletion, sam.CigarSkipped:
			if length > 0 {
				blocks = append(blocks, segmentPair{rStart: rPos, qStart: qPos, length: length})
			}
			rPos += length + size
			qPos += length
			length = 0
		case sam.CigarInsertion, sam.CigarSoftClipped, sam.CigarHardClipped:
			if length > 0 {
				blocks = append(blocks, segmentPair{rStart: rPos, qStart: qPos, length: length})
			}
			rPos += length
			qPos += length + size
			length = 0
		}
	}
	if length > 0 {
		blocks = append(blocks, segmentPair{rStart: rPos, qStart: qPos, length: length})
	}
	rPos += length
	qPos += length
	return blocks, rPos, qPos, nil
}
