package bedutil

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Regions is a chromosome-keyed (here, path-name-keyed) collection of
// interval-unions, as loaded from a BED file.
type Regions struct {
	byName map[string]*Intervals
}

// ReadBED loads a sorted-by-name-then-start BED file (tab-separated
// chrom/start/end, extra columns ignored) into a Regions. Lines sharing a
// name must be sorted by start position; intervals that touch or overlap
// are merged.
func ReadBED(r io.Reader) (*Regions, error) {
	scanner := bufio.NewScanner(r)
	reg := &Regions{byName: make(map[string]*Intervals)}

	curName := ""
	var starts, ends []PosType
	flush := func() {
		if curName != "" {
			reg.byName[curName] = NewIntervals(starts, ends)
		}
		starts, ends = nil, nil
	}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, errors.Errorf("bedutil: line %d has fewer than 3 fields", lineNum)
		}
		name := fields[0]
		start, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "bedutil: line %d start", lineNum)
		}
		end, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, errors.Wrapf(err, "bedutil: line %d end", lineNum)
		}
		if end < start {
			return nil, errors.Errorf("bedutil: line %d has end < start", lineNum)
		}
		if name != curName {
			flush()
			curName = name
		}
		starts = append(starts, PosType(start))
		ends = append(ends, PosType(end))
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "bedutil: reading BED")
	}
	return reg, nil
}

// For returns the interval-union recorded under name, or nil if name
// doesn't appear in the BED file.
func (r *Regions) For(name string) *Intervals {
	return r.byName[name]
}

// Contains reports whether pos, on the path/chromosome called name, falls
// within one of the loaded regions. A name absent from the BED file never
// contains anything.
func (r *Regions) Contains(name string, pos PosType) bool {
	iv := r.byName[name]
	if iv == nil {
		return false
	}
	return iv.Contains(pos)
}
