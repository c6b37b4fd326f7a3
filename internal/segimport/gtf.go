package segimport

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/mcfrith/seg-suite/internal/scan"
)

// gtfRecord is one exon or codon line, keyed for transcript grouping.
// The byte slices point into the buffered line.
type gtfRecord struct {
	name    []byte // transcript_id
	chrom   []byte
	strand  []byte
	feature []byte
	beg     int64
	end     int64
}

// gtf converts GTF in two passes: buffer the exon and codon lines,
// sort them by (transcript, chrom, strand, begin), then sweep the
// sorted records emitting one gene per group through the gene-region
// filter.
func (im *Importer) gtf(l *lineReader) error {
	var lines [][]byte
	for l.next() {
		s := scan.New(l.line)
		first := s.Word()
		if !s.OK() || first[0] == '#' {
			continue
		}
		s.Word()
		feature := s.Word()
		if !s.OK() || isWantedGtfFeature(feature) {
			lines = append(lines, append([]byte(nil), l.line...))
		}
	}

	records := make([]gtfRecord, len(lines))
	for i, line := range lines {
		if j := bytes.IndexByte(line, '#'); j >= 0 {
			line = line[:j] // strip in-line comments
		}
		r := &records[i]
		s := scan.New(line)
		r.chrom = s.Word()
		s.Word() // source
		r.feature = s.Word()
		r.beg = s.Int()
		r.end = s.Int()
		s.Word() // score
		r.strand = s.Word()
		s.Word() // frame
		if !s.OK() {
			return fmt.Errorf("bad GTF line: %s", lines[i])
		}
		if !readGtfTranscriptID(s, &r.name) {
			return fmt.Errorf("missing transcript_id:\n%s", lines[i])
		}
		r.beg--
	}

	sort.SliceStable(records, func(i, j int) bool {
		x, y := &records[i], &records[j]
		if c := bytes.Compare(x.name, y.name); c != 0 {
			return c < 0
		}
		if c := bytes.Compare(x.chrom, y.chrom); c != 0 {
			return c < 0
		}
		if c := bytes.Compare(x.strand, y.strand); c != 0 {
			return c < 0
		}
		return x.beg < y.beg
	})

	var exons []exonRange
	var cdsBeg, cdsEnd int64
	for i := range records {
		r := &records[i]
		if bytes.Equal(r.feature, []byte("exon")) {
			exons = append(exons, exonRange{beg: r.beg, end: r.end})
		} else {
			if cdsEnd == 0 {
				cdsBeg = r.beg
			}
			cdsEnd = r.end
		}
		if i+1 == len(records) || isGtfGroupEnd(r, &records[i+1]) {
			isForward := len(r.strand) == 1 && r.strand[0] == '+'
			if err := im.gene(r.chrom, r.name, isForward, exons, cdsBeg, cdsEnd); err != nil {
				return err
			}
			exons = exons[:0]
			cdsBeg, cdsEnd = 0, 0
		}
	}
	return nil
}

func isWantedGtfFeature(f []byte) bool {
	return bytes.Equal(f, []byte("exon")) ||
		bytes.Equal(f, []byte("start_codon")) ||
		bytes.Equal(f, []byte("stop_codon"))
}

func isGtfGroupEnd(r, next *gtfRecord) bool {
	return bytes.Compare(r.name, next.name) < 0 ||
		bytes.Compare(r.chrom, next.chrom) < 0 ||
		bytes.Compare(r.strand, next.strand) < 0
}

// readGtfTranscriptID scans attribute (tag, value) word pairs for
// transcript_id, unquoting the value and dropping a trailing
// semicolon.
func readGtfTranscriptID(s *scan.Scanner, out *[]byte) bool {
	for {
		tag := s.Word()
		value := s.Word()
		if !s.OK() {
			return false
		}
		if !bytes.Equal(tag, []byte("transcript_id")) {
			continue
		}
		if n := len(value); n > 0 && value[n-1] == ';' {
			value = value[:n-1]
		}
		if len(value) > 0 && value[0] == '"' {
			value = value[1:]
		}
		if n := len(value); n > 0 && value[n-1] == '"' {
			value = value[:n-1]
		}
		*out = value
		return true
	}
}
