package segio

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.seg")
	if err := os.WriteFile(path, []byte("10\tchr1\t0\n"), 0666); err != nil {
		t.Fatal(err)
	}
	in, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	got, err := io.ReadAll(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "10\tchr1\t0\n" {
		t.Errorf("read %q", got)
	}
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.seg.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte("10\tchr1\t0\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	in, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	got, err := io.ReadAll(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "10\tchr1\t0\n" {
		t.Errorf("read %q", got)
	}
}

func TestOpenStdin(t *testing.T) {
	in, err := Open("-")
	if err != nil {
		t.Fatal(err)
	}
	in.Close()
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.seg"))
	if err == nil {
		t.Fatal("expected an error")
	}
	want := "can't open file: "
	if got := err.Error(); len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("err = %q, want %q prefix", got, want)
	}
}
