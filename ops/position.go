package ops

import "github.com/grailbio/flatgfa"

// Position walks path from its start and finds which step covers the
// given base-pair offset, returning that step's handle and the offset
// within the step's own segment. It returns ok == false if offset falls
// at or beyond the end of the path.
func Position(gfa flatgfa.FlatGFA, path flatgfa.Path, offset int) (handle flatgfa.Handle, withinStep int, ok bool) {
	pos := 0
	for _, step := range gfa.GetSteps(path) {
		seg := gfa.GetHandleSeg(step)
		endPos := pos + seg.Len()
		if offset < endPos {
			return step, offset - pos, true
		}
		pos = endPos
	}
	return flatgfa.Handle(0), 0, false
}
