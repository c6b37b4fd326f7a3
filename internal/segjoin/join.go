package segjoin

import (
	"errors"
	"io"

	"github.com/mcfrith/seg-suite/internal/seg"
)

// Run streams the two sorted SEG inputs and writes the selected join
// output. Output order follows the driving file, so it stays sorted by
// (anchor name, anchor start).
func Run(opts Options, in1, in2 io.Reader, out io.Writer) error {
	opts.normalize()
	r1, err := seg.NewReader(in1)
	if err != nil {
		return err
	}
	r2, err := seg.NewReader(in2)
	if err != nil {
		return err
	}
	w := seg.NewWriter(out)

	switch {
	case opts.UnjoinableFile == 1:
		err = writeUnjoinableSegs(w, r1, r2, opts.IsComplete1, opts.JoinOnAllSegments)
	case opts.UnjoinableFile == 2:
		err = writeUnjoinableSegs(w, r2, r1, opts.IsComplete2, opts.JoinOnAllSegments)
	case opts.OverlappingFile == 1:
		err = writeOverlappingSegs(w, r1, r2, opts.MinOverlap, opts.JoinOnAllSegments)
	case opts.OverlappingFile == 2:
		err = writeOverlappingSegs(w, r2, r1, opts.MinOverlap, opts.JoinOnAllSegments)
	default:
		err = writeJoinedSegs(w, r1, r2, opts.IsComplete1, opts.IsComplete2, opts.JoinOnAllSegments)
	}
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return errors.New("write error")
	}
	return nil
}

// isOverlappable reports whether s and t join on all segments: same
// arity, same follower names, and the same start offset between s and
// t in every follower as in the anchor.
func isOverlappable(s, t *seg.Seg) bool {
	if len(s.Parts) != len(t.Parts) {
		return false
	}
	d := s.Beg0() - t.Beg0()
	for i := 1; i < len(s.Parts); i++ {
		if seg.NameCmp(s, t, i) != 0 {
			return false
		}
		if s.Start(i)-t.Start(i) != d {
			return false
		}
	}
	return true
}

// removeOldSegs evicts window records wholly before ibeg, keeping the
// survivors in order.
func removeOldSegs(keptSegs []seg.Seg, ibeg int64) []seg.Seg {
	j := 0
	for ; j < len(keptSegs); j++ {
		if keptSegs[j].End0 <= ibeg {
			break
		}
	}
	if j == len(keptSegs) {
		return keptSegs
	}
	for k := j + 1; k < len(keptSegs); k++ {
		if keptSegs[k].End0 > ibeg {
			keptSegs[j] = keptSegs[k]
			j++
		}
	}
	return keptSegs[:j]
}

// newNameCmp orders the query record against the reference reader's
// current anchor name; an exhausted reader sorts last.
func newNameCmp(s *seg.Seg, r *seg.Reader) int {
	if !r.More() {
		return -1
	}
	return seg.NameCmp(s, r.Seg(), 0)
}

// skipOneSequence advances r past the rest of its current anchor
// sequence.
func skipOneSequence(r *seg.Reader) error {
	for {
		if err := r.Next(); err != nil {
			return err
		}
		if r.NewName() {
			return nil
		}
	}
}

// updateKeptSegs maintains the window of reference records that
// overlap or follow the query reader's current record, on the same
// anchor sequence.
func updateKeptSegs(keptSegs []seg.Seg, r *seg.Reader, q *seg.Reader) ([]seg.Seg, error) {
	s := q.Seg()
	ibeg := s.Beg0()
	iend := s.End0

	if q.NewName() {
		keptSegs = keptSegs[:0]
		if r.NewName() {
			for {
				c := newNameCmp(s, r)
				if c < 0 {
					return keptSegs, nil
				}
				if c == 0 {
					break
				}
				if err := skipOneSequence(r); err != nil {
					return keptSegs, err
				}
			}
		} else {
			for {
				if err := skipOneSequence(r); err != nil {
					return keptSegs, err
				}
				c := newNameCmp(s, r)
				if c < 0 {
					return keptSegs, nil
				}
				if c == 0 {
					break
				}
			}
		}
	} else {
		keptSegs = removeOldSegs(keptSegs, ibeg)
		if r.NewName() {
			if newNameCmp(s, r) < 0 {
				return keptSegs, nil
			}
		}
	}

	for r.More() {
		t := r.Seg()
		if t.Beg0() >= iend {
			break
		}
		if t.End0 > ibeg {
			keptSegs = append(keptSegs, t.Clone())
		}
		if err := r.Next(); err != nil {
			return keptSegs, err
		}
		if r.NewName() {
			break
		}
	}
	return keptSegs, nil
}

// writeJoinedSegs writes the overlap of every record pair, optionally
// filtered to completely contained records of either file.
func writeJoinedSegs(w *seg.Writer, r1, r2 *seg.Reader, isComplete1, isComplete2, isAll bool) error {
	var keptSegs []seg.Seg
	var err error
	for r1.More() {
		s := r1.Seg()
		ibeg := s.Beg0()
		iend := s.End0
		keptSegs, err = updateKeptSegs(keptSegs, r2, r1)
		if err != nil {
			return err
		}
		for j := range keptSegs {
			t := &keptSegs[j]
			jbeg := t.Beg0()
			if jbeg >= iend {
				break
			}
			if isAll && !isOverlappable(s, t) {
				continue
			}
			jend := t.End0
			if isComplete1 && (ibeg < jbeg || iend > jend) {
				continue
			}
			if isComplete2 && (jbeg < ibeg || jend > iend) {
				continue
			}
			beg := max64(ibeg, jbeg)
			end := min64(iend, jend)
			if isAll {
				err = w.SegSlice(s, beg, end)
			} else {
				err = w.SegJoin(s, t, beg, end)
			}
			if err != nil {
				return err
			}
		}
		if err := r1.Next(); err != nil {
			return err
		}
	}
	return nil
}

// writeUnjoinableSegs walks each query anchor left to right, writing
// the residues not covered by the reference. With isComplete, a query
// touching anything is suppressed entirely.
func writeUnjoinableSegs(w *seg.Writer, querys, refs *seg.Reader, isComplete, isAll bool) error {
	var keptSegs []seg.Seg
	var err error
	for querys.More() {
		s := querys.Seg()
		ibeg := s.Beg0()
		iend := s.End0
		keptSegs, err = updateKeptSegs(keptSegs, refs, querys)
		if err != nil {
			return err
		}
		for j := range keptSegs {
			t := &keptSegs[j]
			jbeg := t.Beg0()
			if jbeg >= iend {
				break
			}
			if isAll && !isOverlappable(s, t) {
				continue
			}
			if isComplete {
				ibeg = iend
				break
			}
			jend := t.End0
			if jbeg > ibeg {
				if err := w.SegSlice(s, ibeg, jbeg); err != nil {
					return err
				}
			}
			if jend > ibeg {
				ibeg = jend
			}
		}
		if iend > ibeg {
			if err := w.SegSlice(s, ibeg, iend); err != nil {
				return err
			}
		}
		if err := querys.Next(); err != nil {
			return err
		}
	}
	return nil
}

// writeOverlappingSegs writes each query record whose covered length
// passes the threshold fraction.
func writeOverlappingSegs(w *seg.Writer, querys, refs *seg.Reader, minFrac Fraction, isAll bool) error {
	var keptSegs []seg.Seg
	var err error
	for querys.More() {
		s := querys.Seg()
		ibeg := s.Beg0()
		iend := s.End0
		var overlap int64
		kbeg := ibeg
		keptSegs, err = updateKeptSegs(keptSegs, refs, querys)
		if err != nil {
			return err
		}
		for j := range keptSegs {
			t := &keptSegs[j]
			jbeg := t.Beg0()
			jend := t.End0
			if jbeg >= iend {
				break
			}
			if jend <= kbeg {
				continue
			}
			if isAll && !isOverlappable(s, t) {
				continue
			}
			end := min64(iend, jend)
			overlap += end - max64(jbeg, kbeg)
			kbeg = end
		}
		if float64(overlap)*minFrac.Denom >= float64(iend-ibeg)*minFrac.Numer {
			if err := w.SegSlice(s, ibeg, iend); err != nil {
				return err
			}
		}
		if err := querys.Next(); err != nil {
			return err
		}
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
