package gfaparse

import (
	"bytes"

	"github.com/grailbio/flatgfa"
	"github.com/pkg/errors"
)

var (
	errExpectedNumber      = errors.New("gfaparse: expected a number")
	errExpectedOrientation = errors.New("gfaparse: expected '+' or '-'")
	errExpectedByte        = errors.New("gfaparse: unexpected byte")
	errUnexpectedEOL       = errors.New("gfaparse: unexpected end of line")
)

// parseUntil splits line at the first occurrence of marker, consuming the
// marker itself, and returns the piece before it along with everything
// after. If marker does not appear, the whole line is returned as the
// first piece with an empty remainder.
func parseUntil(line []byte, marker byte) (field, rest []byte) {
	i := bytes.IndexByte(line, marker)
	if i < 0 {
		return line, nil
	}
	return line[:i], line[i+1:]
}

// parseField consumes a tab-delimited field: everything up to the next
// tab, or the rest of the line if there is none.
func parseField(line []byte) (field, rest []byte) {
	return parseUntil(line, '\t')
}

// parseByte consumes a single expected byte, erroring if line is empty or
// starts with something else.
func parseByte(line []byte, want byte) ([]byte, error) {
	if len(line) == 0 || line[0] != want {
		return nil, errExpectedByte
	}
	return line[1:], nil
}

// parseNum consumes a run of ASCII digits and parses them as an unsigned
// decimal integer.
func parseNum(line []byte) (n uint64, rest []byte, err error) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, line, errExpectedNumber
	}
	var v uint64
	for _, b := range line[:i] {
		v = v*10 + uint64(b-'0')
	}
	return v, line[i:], nil
}

// parseOrient consumes a single '+' or '-' character.
func parseOrient(line []byte) (orient flatgfa.Orientation, rest []byte, err error) {
	if len(line) == 0 {
		return 0, line, errUnexpectedEOL
	}
	switch line[0] {
	case '+':
		return flatgfa.Forward, line[1:], nil
	case '-':
		return flatgfa.Backward, line[1:], nil
	default:
		return 0, line, errExpectedOrientation
	}
}
