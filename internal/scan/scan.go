// Package scan is a small field scanner over one line of text.
//
// All read methods are sticky: once any of them fails, every later read
// fails too, so a caller can issue a whole run of reads and test OK()
// once per record.
package scan

import "math"

// Scanner walks one line buffer. The zero value scans an empty line:
// OK() is true until the first read, which fails; use New.
type Scanner struct {
	buf    []byte
	pos    int
	failed bool
}

// New returns a Scanner over line. The returned slices of Word and
// Field alias line.
func New(line []byte) *Scanner {
	return &Scanner{buf: line}
}

// OK reports whether every read so far succeeded.
func (s *Scanner) OK() bool { return !s.failed }

func isSpace(c byte) bool { return c <= ' ' }

func isGraph(c byte) bool { return c > ' ' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (s *Scanner) skipSpace() {
	for s.pos < len(s.buf) && isSpace(s.buf[s.pos]) {
		s.pos++
	}
}

// Word skips whitespace and returns the next run of graphic
// characters. An empty run is a failure.
func (s *Scanner) Word() []byte {
	beg, end := s.WordRange()
	return s.buf[beg:end]
}

// WordRange is Word, returning byte offsets into the line instead of a
// slice. Callers that outlive the scanner use this to index their own
// copy of the line.
func (s *Scanner) WordRange() (beg, end int) {
	if s.failed {
		return 0, 0
	}
	s.skipSpace()
	beg = s.pos
	for s.pos < len(s.buf) && isGraph(s.buf[s.pos]) {
		s.pos++
	}
	if s.pos == beg {
		s.failed = true
		return 0, 0
	}
	return beg, s.pos
}

// Field skips whitespace and returns everything up to the next tab,
// with trailing whitespace trimmed. Unlike Word it keeps interior
// spaces, for formats whose tab-separated columns may contain them.
func (s *Scanner) Field() []byte {
	if s.failed {
		return nil
	}
	s.skipSpace()
	beg := s.pos
	for s.pos < len(s.buf) && s.buf[s.pos] != '\t' {
		s.pos++
	}
	end := s.pos
	for end > beg && isSpace(s.buf[end-1]) {
		end--
	}
	if end == beg {
		s.failed = true
		return nil
	}
	return s.buf[beg:end]
}

// Int skips whitespace and parses a signed decimal integer. No digits,
// or overflow of int64, is a failure. The terminating character is not
// consumed.
func (s *Scanner) Int() int64 {
	if s.failed {
		return 0
	}
	s.skipSpace()
	if s.pos < len(s.buf) && s.buf[s.pos] == '-' {
		s.pos++
		if s.pos == len(s.buf) || !isDigit(s.buf[s.pos]) {
			s.failed = true
			return 0
		}
		z := int64('0') - int64(s.buf[s.pos])
		s.pos++
		for s.pos < len(s.buf) && isDigit(s.buf[s.pos]) {
			if z < math.MinInt64/10 {
				s.failed = true
				return 0
			}
			z *= 10
			digit := int64(s.buf[s.pos] - '0')
			if z < math.MinInt64+digit {
				s.failed = true
				return 0
			}
			z -= digit
			s.pos++
		}
		return z
	}
	if s.pos == len(s.buf) || !isDigit(s.buf[s.pos]) {
		s.failed = true
		return 0
	}
	z := int64(s.buf[s.pos] - '0')
	s.pos++
	for s.pos < len(s.buf) && isDigit(s.buf[s.pos]) {
		if z > math.MaxInt64/10 {
			s.failed = true
			return 0
		}
		z *= 10
		digit := int64(s.buf[s.pos] - '0')
		if z > math.MaxInt64-digit {
			s.failed = true
			return 0
		}
		z += digit
		s.pos++
	}
	return z
}

// Byte skips whitespace and consumes one character. End of input is a
// failure, returning 0.
func (s *Scanner) Byte() byte {
	if s.failed {
		return 0
	}
	s.skipSpace()
	if s.pos == len(s.buf) {
		s.failed = true
		return 0
	}
	c := s.buf[s.pos]
	s.pos++
	return c
}

// SkipOne consumes a single character, if any. Used to step over the
// delimiters of comma-separated lists.
func (s *Scanner) SkipOne() {
	if !s.failed && s.pos < len(s.buf) {
		s.pos++
	}
}
