package ops

import "github.com/grailbio/flatgfa"

// Depth computes, for every segment, how many path steps visit it
// (counting a path that revisits a segment more than once multiple
// times) and how many distinct paths visit it at least once.
func Depth(gfa flatgfa.FlatGFA) (depths []int, uniquePaths []int) {
	depths = make([]int, gfa.Segs.Len())
	seen := make([]map[int]struct{}, gfa.Segs.Len())
	for i := range seen {
		seen[i] = make(map[int]struct{})
	}

	for pathIdx, path := range gfa.Paths.All() {
		for _, step := range gfa.GetSteps(path) {
			segIdx := step.Segment().Index()
			depths[segIdx]++
			seen[segIdx][pathIdx] = struct{}{}
		}
	}

	uniquePaths = make([]int, gfa.Segs.Len())
	for i, set := range seen {
		uniquePaths[i] = len(set)
	}
	return depths, uniquePaths
}
