package segimport

// exonRange is one half-open exon interval on the forward strand.
type exonRange struct {
	beg, end int64
}

// gene writes the selected regions of one gene or transcript, given
// its exons in ascending order. chrom is the anchor sequence; name
// becomes the follower, with starts relative to the transcript's
// 5' end.
func (im *Importer) gene(chrom, name []byte, isForward bool, exons []exonRange, cdsBeg, cdsEnd int64) error {
	if len(exons) == 0 {
		return nil
	}
	if im.opts.Primary {
		return im.primaryTranscript(chrom, name, isForward, exons)
	}
	if im.opts.Introns {
		return im.introns(chrom, name, isForward, exons)
	}
	return im.exonWindows(chrom, name, isForward, exons, cdsBeg, cdsEnd)
}

// primaryTranscript writes one record spanning first exon start to
// last exon end.
func (im *Importer) primaryTranscript(chrom, name []byte, isForward bool, exons []exonRange) error {
	beg := exons[0].beg
	end := exons[len(exons)-1].end
	size := end - beg
	pos := int64(0)
	if !isForward {
		pos = -size
	}
	return im.out.pair(size, chrom, beg, name, pos)
}

// introns writes the gap between each adjacent exon pair. On the
// reverse strand the whole record is flipped so both sides stay
// anchored to the transcript's 5' end.
func (im *Importer) introns(chrom, name []byte, isForward bool, exons []exonRange) error {
	if isForward {
		origin := exons[0].beg
		for x := 1; x < len(exons); x++ {
			i := exons[x-1].end
			j := exons[x].beg
			if err := im.out.pair(j-i, chrom, i, name, i-origin); err != nil {
				return err
			}
		}
		return nil
	}
	origin := exons[len(exons)-1].end
	for x := 1; x < len(exons); x++ {
		i := exons[x-1].end
		j := exons[x].beg
		if err := im.out.pair(j-i, chrom, -j, name, origin-j); err != nil {
			return err
		}
	}
	return nil
}

// exonWindows intersects each exon with the print window selected by
// the cds/utr options. The 5' and 3' sides swap on the reverse strand.
func (im *Importer) exonWindows(chrom, name []byte, isForward bool, exons []exonRange, cdsBeg, cdsEnd int64) error {
	o := im.opts
	if cdsBeg >= cdsEnd && (o.UTR5 || o.UTR3) {
		return nil
	}
	isBegUtr := o.UTR5
	isEndUtr := o.UTR3
	if !isForward {
		isBegUtr, isEndUtr = isEndUtr, isBegUtr
	}
	minBeg := exons[0].beg
	maxEnd := exons[len(exons)-1].end
	if o.CDS {
		switch {
		case isBegUtr && isEndUtr:
			return im.printExons(chrom, name, isForward, exons, minBeg, maxEnd)
		case isBegUtr:
			return im.printExons(chrom, name, isForward, exons, minBeg, cdsEnd)
		case isEndUtr:
			return im.printExons(chrom, name, isForward, exons, cdsBeg, maxEnd)
		default:
			return im.printExons(chrom, name, isForward, exons, cdsBeg, cdsEnd)
		}
	}
	switch {
	case isBegUtr && isEndUtr:
		if err := im.printExons(chrom, name, isForward, exons, minBeg, cdsBeg); err != nil {
			return err
		}
		return im.printExons(chrom, name, isForward, exons, cdsEnd, maxEnd)
	case isBegUtr:
		return im.printExons(chrom, name, isForward, exons, minBeg, cdsBeg)
	case isEndUtr:
		return im.printExons(chrom, name, isForward, exons, cdsEnd, maxEnd)
	default:
		return im.printExons(chrom, name, isForward, exons, minBeg, maxEnd)
	}
}

// printExons writes each exon clipped to [printBeg,printEnd). The
// follower start counts exonic bases from the transcript's 5' end,
// negative on the reverse strand.
func (im *Importer) printExons(chrom, name []byte, isForward bool, exons []exonRange, printBeg, printEnd int64) error {
	var pos int64
	if !isForward {
		for _, r := range exons {
			pos -= r.end - r.beg
		}
	}
	for _, r := range exons {
		beg := max64(r.beg, printBeg)
		end := min64(r.end, printEnd)
		if beg < end {
			if err := im.out.pair(end-beg, chrom, beg, name, pos+beg-r.beg); err != nil {
				return err
			}
		}
		pos += r.end - r.beg
	}
	return nil
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
