// Package segio opens the input files of the seg tools.
package segio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// readCloser closes every underlying closer when Close is called.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens name for reading. "-" is stdin. Gzipped files are
// decompressed transparently, detected by the .gz suffix or the gzip
// magic bytes.
func Open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("can't open file: %s", name)
	}

	var sig [2]byte
	n, _ := io.ReadFull(f, sig[:])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("can't open file: %s", name)
	}
	gzipped := n == 2 && sig[0] == 0x1f && sig[1] == 0x8b
	if !gzipped && !strings.HasSuffix(name, ".gz") {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("can't open file: %s", name)
	}
	return &readCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
}
