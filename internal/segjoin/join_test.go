package segjoin

import (
	"strings"
	"testing"
)

func runJoin(t *testing.T, opts Options, in1, in2 string) string {
	t.Helper()
	var out strings.Builder
	if err := Run(opts, strings.NewReader(in1), strings.NewReader(in2), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestParseFraction(t *testing.T) {
	tests := []struct {
		in    string
		numer float64
		denom float64
		ok    bool
	}{
		{"50", 50, 100, true},
		{"1/3", 1, 3, true},
		{"0", 0, 100, true},
		{"100", 100, 100, true},
		{"150", 0, 0, false},
		{"-5", 0, 0, false},
		{"3/0", 0, 0, false},
		{"abc", 0, 0, false},
	}
	for _, tt := range tests {
		f, err := ParseFraction(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseFraction(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && (f.Numer != tt.numer || f.Denom != tt.denom) {
			t.Errorf("ParseFraction(%q) = %v/%v, want %v/%v", tt.in, f.Numer, f.Denom, tt.numer, tt.denom)
		}
	}
}

func TestJoinDefault(t *testing.T) {
	got := runJoin(t, Options{}, "10\tchrA\t0\n", "4\tchrA\t5\n")
	if want := "4\tchrA\t5\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJoinConcatenatesFollowers(t *testing.T) {
	got := runJoin(t, Options{}, "10\tchrA\t0\tq1\t50\n", "4\tchrA\t5\tq2\t90\n")
	if want := "4\tchrA\t5\tq1\t55\tq2\t90\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJoinMultipleSequences(t *testing.T) {
	in1 := "5\tchrA\t0\n5\tchrC\t10\n"
	in2 := "5\tchrA\t2\n5\tchrB\t0\n5\tchrC\t8\n"
	got := runJoin(t, Options{}, in1, in2)
	if want := "3\tchrA\t2\n3\tchrC\t10\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJoinWindowEviction(t *testing.T) {
	in1 := "4\tchrA\t0\n4\tchrA\t10\n"
	in2 := "2\tchrA\t1\n2\tchrA\t11\n"
	got := runJoin(t, Options{}, in1, in2)
	if want := "2\tchrA\t1\n2\tchrA\t11\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnjoinable(t *testing.T) {
	got := runJoin(t, Options{UnjoinableFile: 1}, "10\tchrA\t0\n", "4\tchrA\t5\n")
	if want := "5\tchrA\t0\n1\tchrA\t9\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnjoinableFile2(t *testing.T) {
	got := runJoin(t, Options{UnjoinableFile: 2}, "4\tchrA\t5\n", "10\tchrA\t0\n")
	if want := "5\tchrA\t0\n1\tchrA\t9\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnjoinableNoOverlap(t *testing.T) {
	got := runJoin(t, Options{UnjoinableFile: 1}, "10\tchrA\t0\n", "4\tchrB\t5\n")
	if want := "10\tchrA\t0\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnjoinableComplete(t *testing.T) {
	opts := Options{UnjoinableFile: 1, IsComplete1: true}
	got := runJoin(t, opts, "10\tchrA\t0\n10\tchrA\t20\n", "4\tchrA\t5\n")
	if want := "10\tchrA\t20\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCompleteContainment(t *testing.T) {
	in1 := "4\tchrA\t5\n"
	in2 := "10\tchrA\t0\n"
	got := runJoin(t, Options{IsComplete1: true}, in1, in2)
	if want := "4\tchrA\t5\n"; got != want {
		t.Errorf("-c 1: got %q, want %q", got, want)
	}
	if got := runJoin(t, Options{IsComplete2: true}, in1, in2); got != "" {
		t.Errorf("-c 2: got %q, want none", got)
	}
}

func TestSelfJoinComplete(t *testing.T) {
	in := "4\tchrA\t5\n6\tchrB\t2\n"
	got := runJoin(t, Options{IsComplete1: true}, in, in)
	if got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestJoinOnAllSegments(t *testing.T) {
	in1 := "10\tchrA\t0\tq1\t50\n"
	tests := []struct {
		name string
		in2  string
		want string
	}{
		{"same offsets", "4\tchrA\t5\tq1\t55\n", "4\tchrA\t5\tq1\t55\n"},
		{"name mismatch", "4\tchrA\t5\tq2\t55\n", ""},
		{"offset mismatch", "4\tchrA\t5\tq1\t54\n", ""},
		{"arity mismatch", "4\tchrA\t5\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runJoin(t, Options{JoinOnAllSegments: true}, in1, tt.in2)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOverlapFraction(t *testing.T) {
	in1 := "4\tchrA\t5\n"
	in2 := "10\tchrA\t0\n"
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"covered at least 40", Options{MinOverlap: Fraction{Numer: 40, Denom: 100}}, "10\tchrA\t0\n"},
		{"covered at least 50", Options{MinOverlap: Fraction{Numer: 50, Denom: 100}}, ""},
		{"covered at most 30", Options{MinOverlap: Fraction{Numer: -30, Denom: -100}}, ""},
		{"covered at most 40", Options{MinOverlap: Fraction{Numer: -40, Denom: -100}}, "10\tchrA\t0\n"},
		{"any overlap file 1", Options{OverlappingFile: 1}, "4\tchrA\t5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runJoin(t, tt.opts, in1, in2)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOverlapFractionNoHits(t *testing.T) {
	opts := Options{OverlappingFile: 2}
	got := runJoin(t, opts, "4\tchrB\t5\n", "10\tchrA\t0\n")
	if got != "" {
		t.Errorf("got %q, want none", got)
	}
}

func TestUnsortedInput(t *testing.T) {
	var out strings.Builder
	in1 := strings.NewReader("5\tchrA\t10\n5\tchrA\t0\n")
	in2 := strings.NewReader("5\tchrA\t0\n")
	err := Run(Options{}, in1, in2, &out)
	if err == nil || err.Error() != "input not sorted properly" {
		t.Errorf("err = %v, want sort error", err)
	}
}

func TestCommentsAndBlanks(t *testing.T) {
	in1 := "# file one\n\n10\tchrA\t0\n"
	in2 := "4\tchrA\t5\n# trailing\n"
	got := runJoin(t, Options{}, in1, in2)
	if want := "4\tchrA\t5\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
