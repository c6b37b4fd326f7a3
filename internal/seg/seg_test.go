package seg

import (
	"strings"
	"testing"
)

func mustRead(t *testing.T, in string) *Reader {
	t.Helper()
	r, err := NewReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	return r
}

func TestReaderParses(t *testing.T) {
	r := mustRead(t, "# comment\n\n10\tchrA\t5\tq\t-3\n")
	if !r.More() {
		t.Fatal("expected one record")
	}
	s := r.Seg()
	if got := len(s.Parts); got != 2 {
		t.Fatalf("parts = %d, want 2", got)
	}
	if string(s.Name(0)) != "chrA" || s.Beg0() != 5 || s.End0 != 15 {
		t.Errorf("anchor = %s [%d,%d), want chrA [5,15)", s.Name(0), s.Beg0(), s.End0)
	}
	if string(s.Name(1)) != "q" || s.Start(1) != -3 {
		t.Errorf("follower = %s %d, want q -3", s.Name(1), s.Start(1))
	}
	if err := r.Next(); err != nil {
		t.Fatal(err)
	}
	if r.More() {
		t.Error("expected end of input")
	}
}

func TestReaderNewName(t *testing.T) {
	r := mustRead(t, "3\ta\t0\n3\ta\t5\n3\tb\t0\n")
	wants := []bool{true, false, true}
	for i, want := range wants {
		if !r.More() {
			t.Fatalf("record %d missing", i)
		}
		if r.NewName() != want {
			t.Errorf("record %d: NewName = %v, want %v", i, r.NewName(), want)
		}
		if err := r.Next(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestReaderUnsorted(t *testing.T) {
	tests := []string{
		"5\tchrA\t10\n5\tchrA\t0\n",
		"5\tchrB\t0\n5\tchrA\t0\n",
	}
	for _, in := range tests {
		r := mustRead(t, in)
		err := r.Next()
		if err == nil || err.Error() != "input not sorted properly" {
			t.Errorf("input %q: err = %v, want sort error", in, err)
		}
	}
}

func TestReaderBadLine(t *testing.T) {
	tests := []string{"x\n", "10\tchrA\n", "10\n"}
	for _, in := range tests {
		if _, err := NewReader(strings.NewReader(in)); err == nil {
			t.Errorf("input %q: expected a parse error", in)
		}
	}
}

func TestWriterSegSlice(t *testing.T) {
	r := mustRead(t, "10\tchrA\t5\tq\t-3\n")
	var out strings.Builder
	w := NewWriter(&out)
	if err := w.SegSlice(r.Seg(), 7, 12); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "5\tchrA\t7\tq\t-1\n"
	if out.String() != want {
		t.Errorf("SegSlice = %q, want %q", out.String(), want)
	}
}

func TestWriterSegJoin(t *testing.T) {
	r1 := mustRead(t, "10\tchrA\t0\tq1\t50\n")
	r2 := mustRead(t, "4\tchrA\t5\tq2\t90\n")
	var out strings.Builder
	w := NewWriter(&out)
	if err := w.SegJoin(r1.Seg(), r2.Seg(), 5, 9); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "4\tchrA\t5\tq1\t55\tq2\t90\n"
	if out.String() != want {
		t.Errorf("SegJoin = %q, want %q", out.String(), want)
	}
}

func TestCloneKeepsParts(t *testing.T) {
	r := mustRead(t, "3\ta\t0\tx\t7\n3\ta\t5\n")
	kept := r.Seg().Clone()
	if err := r.Next(); err != nil {
		t.Fatal(err)
	}
	if string(kept.Name(1)) != "x" || kept.Start(1) != 7 {
		t.Errorf("clone changed after Next: %s %d", kept.Name(1), kept.Start(1))
	}
}
