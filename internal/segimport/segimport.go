// Package segimport converts segments and alignments in various
// genomics formats to SEG.
package segimport

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format identifies one of the supported input formats.
type Format int

// The supported input formats.
const (
	BED Format = iota
	Chain
	GenePred
	GFF
	GTF
	LastTab
	MAF
	PSL
	RMSK
	SAM
)

// ParseFormat maps a case-insensitive format name to its Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "bed":
		return BED, nil
	case "chain":
		return Chain, nil
	case "genepred":
		return GenePred, nil
	case "gff":
		return GFF, nil
	case "gtf":
		return GTF, nil
	case "lasttab":
		return LastTab, nil
	case "maf":
		return MAF, nil
	case "psl":
		return PSL, nil
	case "rmsk":
		return RMSK, nil
	case "sam":
		return SAM, nil
	}
	return 0, fmt.Errorf("unknown format: %s", name)
}

// Options selects what seg-import writes.
type Options struct {
	// Forward is the forward-segment number: records whose Forward'th
	// part would start on the reverse strand are pivoted whole so that
	// part becomes forward-stranded. 0 turns this off.
	Forward int

	// Alignments adds alignment number/position columns to the output
	// of the alignment formats (lastTab, maf, psl)
	Alignments bool

	// gene region selection for bed, genePred and gtf
	CDS     bool
	UTR5    bool
	UTR3    bool
	Introns bool
	Primary bool
}

func (o Options) validate() error {
	others := o.CDS || o.UTR5 || o.UTR3
	if (o.Introns && (others || o.Primary)) || (o.Primary && (others || o.Introns)) {
		return errors.New("can't combine option -i or -p with any other option")
	}
	return nil
}

// Importer streams records of one format and writes SEG lines. The
// alignment number is shared across all files of one run.
type Importer struct {
	opts   Options
	out    *emitter
	alnNum int64
}

// New returns an Importer writing to w, or an error for an invalid
// option combination.
func New(opts Options, w io.Writer) (*Importer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Importer{opts: opts, out: newEmitter(opts, w)}, nil
}

// File converts one input stream.
func (im *Importer) File(f Format, in io.Reader) error {
	l := newLineReader(in)
	var err error
	switch f {
	case BED:
		err = im.bed(l)
	case Chain:
		err = im.chain(l)
	case GenePred:
		err = im.genePred(l)
	case GFF:
		err = im.gff(l)
	case GTF:
		err = im.gtf(l)
	case LastTab:
		err = im.lastTab(l)
	case MAF:
		err = im.maf(l)
	case PSL:
		err = im.psl(l)
	case RMSK:
		err = im.rmsk(l)
	case SAM:
		err = im.sam(l)
	}
	if err != nil {
		return err
	}
	return l.err
}

// Flush writes out buffered output. Call once after the last File.
func (im *Importer) Flush() error {
	if err := im.out.bw.Flush(); err != nil {
		return errors.New("write error")
	}
	return nil
}

// lineReader yields lines without their newline, reusing one buffer.
// Decoders that hold a line across reads must copy it.
type lineReader struct {
	br   *bufio.Reader
	line []byte
	err  error
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReaderSize(r, 1<<16)}
}

func (l *lineReader) next() bool {
	if l.err != nil {
		return false
	}
	l.line = l.line[:0]
	for {
		frag, err := l.br.ReadSlice('\n')
		l.line = append(l.line, frag...)
		if err == bufio.ErrBufferFull {
			continue
		}
		if n := len(l.line); n > 0 && l.line[n-1] == '\n' {
			l.line = l.line[:n-1]
		}
		if err == io.EOF {
			return len(l.line) > 0
		}
		if err != nil {
			l.err = err
			return false
		}
		return true
	}
}
