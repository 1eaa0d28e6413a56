package ops

import (
	"testing"

	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfapool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildChain builds a four-segment chain 1->2->3->4 (each 4bp), with a
// single path walking straight through it.
func buildChain(t *testing.T) (*flatgfa.GFAStore, []gfapool.Id[flatgfa.Segment]) {
	t.Helper()
	s := flatgfa.NewHeapGFAStore()
	var segs []gfapool.Id[flatgfa.Segment]
	for i := uint64(1); i <= 4; i++ {
		segs = append(segs, s.AddSeg(i, []byte("AAAA"), nil))
	}
	var handles []flatgfa.Handle
	for i := 0; i < 3; i++ {
		from := flatgfa.NewHandle(segs[i], flatgfa.Forward)
		to := flatgfa.NewHandle(segs[i+1], flatgfa.Forward)
		s.AddLink(from, to, nil)
		handles = append(handles, from)
	}
	handles = append(handles, flatgfa.NewHandle(segs[3], flatgfa.Forward))
	steps := s.AddSteps(handles)
	s.AddPath([]byte("p"), steps, nil)
	return s, segs
}

func TestExtractOneHop(t *testing.T) {
	s, segs := buildChain(t)
	g := s.View()

	sub := Extract(g, segs[1], 1, 0, 1)
	subView := sub.View()

	require.Equal(t, 3, subView.Segs.Len())
	names := map[uint64]bool{}
	for _, seg := range subView.Segs.All() {
		names[seg.Name] = true
	}
	assert.True(t, names[1])
	assert.True(t, names[2])
	assert.True(t, names[3])
	assert.False(t, names[4])
}

func TestChopSubdividesLongSegments(t *testing.T) {
	s := flatgfa.NewHeapGFAStore()
	seg := s.AddSeg(1, []byte("AAAAAAAAAA"), nil) // 10bp
	from := flatgfa.NewHandle(seg, flatgfa.Forward)
	steps := s.AddSteps([]flatgfa.Handle{from})
	s.AddPath([]byte("p"), steps, nil)

	chopped := Chop(s.View(), 4, true)
	g := chopped.View()

	// 10bp at max 4bp per piece: 4 + 4 + 2 = 3 pieces.
	require.Equal(t, 3, g.Segs.Len())
	require.Equal(t, 2, g.Links.Len())

	path := g.Paths.At(0)
	steps2 := g.GetSteps(path)
	require.Len(t, steps2, 3)

	total := 0
	for _, st := range steps2 {
		total += g.GetHandleSeg(st).Len()
	}
	assert.Equal(t, 10, total)
}

func TestChopLeavesShortSegmentsAlone(t *testing.T) {
	s := flatgfa.NewHeapGFAStore()
	s.AddSeg(1, []byte("AA"), nil)
	chopped := Chop(s.View(), 10, false)
	g := chopped.View()
	require.Equal(t, 1, g.Segs.Len())
	assert.Equal(t, "AA", string(g.GetSeq(g.Segs.At(0))))
}

func TestDepth(t *testing.T) {
	s, _ := buildChain(t)
	g := s.View()

	depths, uniq := Depth(g)
	require.Len(t, depths, 4)
	for _, d := range depths {
		assert.Equal(t, 1, d)
	}
	for _, u := range uniq {
		assert.Equal(t, 1, u)
	}
}

func TestPosition(t *testing.T) {
	s, _ := buildChain(t)
	g := s.View()
	path := g.Paths.At(0)

	handle, within, ok := Position(g, path, 5)
	require.True(t, ok)
	assert.Equal(t, 1, within)
	seg := g.GetHandleSeg(handle)
	assert.Equal(t, uint64(2), seg.Name)

	_, _, ok = Position(g, path, 16)
	assert.False(t, ok)
}

func TestPathChunkerPartialAndFullSteps(t *testing.T) {
	s, _ := buildChain(t)
	g := s.View()
	nameMap := BuildSegNameMap(g)

	line, err := ParseGAFLine([]byte("read1\t16\t0\t16\t+\t>1>2>3>4\t16\t2\t10\t8\t8\t60"))
	require.NoError(t, err)
	assert.Equal(t, 2, line.Start)
	assert.Equal(t, 10, line.End)

	chunker := NewPathChunker(g, nameMap, line)
	var events []ChunkEvent
	for {
		ev, ok := chunker.Next()
		if !ok {
			break
		}
		events = append(events, ev)
	}
	require.Len(t, events, 4)
	assert.Equal(t, ChunkPartial, events[0].Kind)
	assert.Equal(t, 2, events[0].Start)
	assert.Equal(t, 4, events[0].End)
	assert.Equal(t, ChunkAll, events[1].Kind)
	assert.Equal(t, ChunkPartial, events[2].Kind)
	assert.Equal(t, 0, events[2].Start)
	assert.Equal(t, 2, events[2].End)
	assert.Equal(t, ChunkNone, events[3].Kind)
}
