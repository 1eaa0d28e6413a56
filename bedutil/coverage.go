package bedutil

import (
	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/ops"
)

// PathCoverage reports, for each offset in offsets (expected sorted and
// nondecreasing), whether that base-pair position along path is covered
// by one of regions' intervals for path's name. An offset at or past the
// end of the path is reported uncovered.
func PathCoverage(gfa flatgfa.FlatGFA, path flatgfa.Path, regions *Regions, offsets []int) []bool {
	name := string(gfa.GetPathName(path))
	iv := regions.For(name)
	covered := make([]bool, len(offsets))
	if iv == nil {
		return covered
	}
	for i, off := range offsets {
		if _, _, ok := ops.Position(gfa, path, off); !ok {
			continue
		}
		covered[i] = iv.Contains(PosType(off))
	}
	return covered
}
