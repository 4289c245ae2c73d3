// Package trace reads valgrind-style memory access records.
package trace

import (
	"bufio"
	"io"
)

// Op identifies the kind of a trace record.
type Op byte

const (
	// OpLoad is a data load.
	OpLoad Op = 'L'
	// OpStore is a data store.
	OpStore Op = 'S'
	// OpModify is a load followed by a store to the same address.
	OpModify Op = 'M'
	// OpInstruction marks an instruction fetch. It is carried through the
	// record stream but models no data access.
	OpInstruction Op = 'I'
)

// A Record is one trace entry: an operation, the accessed address, and the
// access size in bytes. Size is carried through for reporting; it has no
// effect on hit/miss classification.
type Record struct {
	Op   Op
	Addr uint64
	Size int
}

// A Scanner reads records from a trace stream. It matches the pattern
// `<op> <hex-address>,<decimal-size>` with C-scanf field semantics:
// whitespace (including newlines) is skipped before the opcode character and
// before each numeric field, the comma is literal, and the address carries
// no 0x prefix. The first input that does not complete the three-field
// pattern ends the scan, even if bytes remain; trailing garbage truncates
// the trace silently instead of failing the run.
type Scanner struct {
	r    *bufio.Reader
	done bool
}

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Next returns the next record. ok is false once the stream is exhausted or
// the record pattern no longer matches; the scanner then stays exhausted.
func (s *Scanner) Next() (rec Record, ok bool) {
	if s.done {
		return Record{}, false
	}

	rec, ok = s.scan()
	if !ok {
		s.done = true
		return Record{}, false
	}

	return rec, true
}

func (s *Scanner) scan() (Record, bool) {
	s.skipSpace()
	op, err := s.r.ReadByte()
	if err != nil {
		return Record{}, false
	}

	s.skipSpace()
	addr, ok := s.scanHex()
	if !ok {
		return Record{}, false
	}

	b, err := s.r.ReadByte()
	if err != nil || b != ',' {
		return Record{}, false
	}

	s.skipSpace()
	size, ok := s.scanDecimal()
	if !ok {
		return Record{}, false
	}

	return Record{Op: Op(op), Addr: addr, Size: size}, true
}

// skipSpace consumes any run of whitespace, leaving the reader positioned at
// the first non-space byte or at end of input.
func (s *Scanner) skipSpace() {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return
		}
		if !isSpace(b) {
			_ = s.r.UnreadByte()
			return
		}
	}
}

// scanHex consumes a run of at least one hexadecimal digit.
func (s *Scanner) scanHex() (uint64, bool) {
	var value uint64
	digits := 0

	for {
		b, err := s.r.ReadByte()
		if err != nil {
			break
		}

		d, ok := hexDigit(b)
		if !ok {
			_ = s.r.UnreadByte()
			break
		}

		value = value<<4 | uint64(d)
		digits++
	}

	return value, digits > 0
}

// scanDecimal consumes an optionally signed run of at least one decimal
// digit.
func (s *Scanner) scanDecimal() (int, bool) {
	value := 0
	digits := 0
	negative := false

	b, err := s.r.ReadByte()
	if err != nil {
		return 0, false
	}
	if b == '-' {
		negative = true
	} else {
		_ = s.r.UnreadByte()
	}

	for {
		b, err := s.r.ReadByte()
		if err != nil {
			break
		}

		if b < '0' || b > '9' {
			_ = s.r.UnreadByte()
			break
		}

		value = value*10 + int(b-'0')
		digits++
	}

	if negative {
		value = -value
	}

	return value, digits > 0
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
