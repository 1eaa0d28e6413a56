package gfaparse

import (
	"github.com/grailbio/flatgfa"
	"github.com/pkg/errors"
)

// parseCigar parses a CIGAR string such as "3M1D2M" into a sequence of
// AlignOps. A bare "*" denotes an empty alignment.
func parseCigar(s []byte) ([]flatgfa.AlignOp, error) {
	if len(s) == 0 || (len(s) == 1 && s[0] == '*') {
		return nil, nil
	}
	var ops []flatgfa.AlignOp
	for len(s) > 0 {
		length, rest, err := parseNum(s)
		if err != nil {
			return nil, errors.Wrap(err, "gfaparse: malformed CIGAR length")
		}
		if len(rest) == 0 {
			return nil, errors.New("gfaparse: CIGAR string missing operation code")
		}
		opcode, err := parseAlignOpcode(rest[0])
		if err != nil {
			return nil, err
		}
		if length > 1<<24-1 {
			return nil, errors.Errorf("gfaparse: CIGAR run %d too long to encode", length)
		}
		ops = append(ops, flatgfa.NewAlignOp(opcode, uint32(length)))
		s = rest[1:]
	}
	return ops, nil
}

func parseAlignOpcode(b byte) (flatgfa.AlignOpcode, error) {
	switch b {
	case 'M':
		return flatgfa.OpMatch, nil
	case 'N':
		return flatgfa.OpGap, nil
	case 'D':
		return flatgfa.OpDeletion, nil
	case 'I':
		return flatgfa.OpInsertion, nil
	default:
		return 0, errors.Errorf("gfaparse: unrecognized CIGAR operation %q", b)
	}
}

// parseMaybeOverlapList parses a path's overlap field, which is either a
// bare "*" (no overlaps recorded for any step) or a comma-separated list
// of CIGAR strings, one per step.
func parseMaybeOverlapList(s []byte) (overlaps [][]flatgfa.AlignOp, rest []byte, err error) {
	if len(s) == 1 && s[0] == '*' {
		return nil, s[1:], nil
	}
	return parseOverlapList(s)
}

func parseOverlapList(s []byte) (overlaps [][]flatgfa.AlignOp, rest []byte, err error) {
	for len(s) > 0 {
		var field []byte
		field, s = parseUntil(s, ',')
		ops, err := parseCigar(field)
		if err != nil {
			return nil, nil, err
		}
		overlaps = append(overlaps, ops)
	}
	return overlaps, s, nil
}
