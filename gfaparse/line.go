package gfaparse

import (
	"github.com/grailbio/flatgfa"
	"github.com/pkg/errors"
)

// segLine is a parsed "S" line, borrowing its byte slices from the
// original input.
type segLine struct {
	name     uint64
	seq      []byte
	optional []byte
}

// linkLine is a parsed "L" line with its CIGAR already decoded.
type linkLine struct {
	fromSeg    uint64
	fromOrient flatgfa.Orientation
	toSeg      uint64
	toOrient   flatgfa.Orientation
	overlap    []flatgfa.AlignOp
}

// parseSegLine parses the body of an "S" line (after the marker and its
// tab have already been stripped).
func parseSegLine(line []byte) (segLine, error) {
	name, rest, err := parseNum(line)
	if err != nil {
		return segLine{}, errors.Wrap(err, "gfaparse: segment line")
	}
	rest, err = parseByte(rest, '\t')
	if err != nil {
		return segLine{}, errors.Wrap(err, "gfaparse: segment line")
	}
	seq, optional := parseField(rest)
	return segLine{name: name, seq: seq, optional: optional}, nil
}

// parseLinkLine parses the body of an "L" line.
func parseLinkLine(line []byte) (linkLine, error) {
	fromSeg, rest, err := parseNum(line)
	if err != nil {
		return linkLine{}, errors.Wrap(err, "gfaparse: link line")
	}
	rest, err = parseByte(rest, '\t')
	if err != nil {
		return linkLine{}, errors.Wrap(err, "gfaparse: link line")
	}
	fromOrient, rest, err := parseOrient(rest)
	if err != nil {
		return linkLine{}, errors.Wrap(err, "gfaparse: link line")
	}
	rest, err = parseByte(rest, '\t')
	if err != nil {
		return linkLine{}, errors.Wrap(err, "gfaparse: link line")
	}
	toSeg, rest, err := parseNum(rest)
	if err != nil {
		return linkLine{}, errors.Wrap(err, "gfaparse: link line")
	}
	rest, err = parseByte(rest, '\t')
	if err != nil {
		return linkLine{}, errors.Wrap(err, "gfaparse: link line")
	}
	toOrient, rest, err := parseOrient(rest)
	if err != nil {
		return linkLine{}, errors.Wrap(err, "gfaparse: link line")
	}
	rest, err = parseByte(rest, '\t')
	if err != nil {
		return linkLine{}, errors.Wrap(err, "gfaparse: link line")
	}
	overlapField, rest := parseField(rest)
	if len(rest) != 0 {
		return linkLine{}, errors.New("gfaparse: link line has trailing data")
	}
	overlap, err := parseCigar(overlapField)
	if err != nil {
		return linkLine{}, err
	}
	return linkLine{
		fromSeg: fromSeg, fromOrient: fromOrient,
		toSeg: toSeg, toOrient: toOrient,
		overlap: overlap,
	}, nil
}
