package gfafile

import (
	"testing"

	"github.com/grailbio/flatgfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTinyGraph() *flatgfa.GFAStore {
	s := flatgfa.NewHeapGFAStore()
	s.AddHeader([]byte("VN:Z:1.0"))
	seg1 := s.AddSeg(1, []byte("AAAA"), nil)
	seg2 := s.AddSeg(2, []byte("CC"), nil)
	from := flatgfa.NewHandle(seg1, flatgfa.Forward)
	to := flatgfa.NewHandle(seg2, flatgfa.Backward)
	s.AddLink(from, to, []flatgfa.AlignOp{flatgfa.NewAlignOp(flatgfa.OpMatch, 2)})
	steps := s.AddSteps([]flatgfa.Handle{from, to})
	s.AddPath([]byte("x"), steps, nil)
	return s
}

func TestDumpViewRoundTrip(t *testing.T) {
	built := buildTinyGraph().View()

	buf := make([]byte, Size(built))
	Dump(built, buf)

	loaded := View(buf)
	require.Equal(t, built.Segs.Len(), loaded.Segs.Len())
	require.Equal(t, built.Links.Len(), loaded.Links.Len())
	require.Equal(t, built.Paths.Len(), loaded.Paths.Len())

	seg1, ok := loaded.FindSeg(1)
	require.True(t, ok)
	assert.Equal(t, "AAAA", string(loaded.GetSeq(loaded.Segs.At(seg1))))

	path, ok := loaded.FindPath([]byte("x"))
	require.True(t, ok)
	steps := loaded.GetSteps(loaded.Paths.At(path))
	require.Len(t, steps, 2)
	assert.Equal(t, flatgfa.Forward, steps[0].Orient())
	assert.Equal(t, flatgfa.Backward, steps[1].Orient())
}

func TestInitBuildsInPlace(t *testing.T) {
	toc := Guess(1)
	buf := make([]byte, toc.Size())
	s := Init(buf, toc)

	seg1 := s.AddSeg(1, []byte("GATTACA"), nil)
	seg2 := s.AddSeg(2, []byte("TT"), nil)
	from := flatgfa.NewHandle(seg1, flatgfa.Forward)
	to := flatgfa.NewHandle(seg2, flatgfa.Forward)
	s.AddLink(from, to, nil)

	g := s.View()
	require.Equal(t, 2, g.Segs.Len())
	assert.Equal(t, "GATTACA", string(g.GetSeq(g.Segs.At(seg1))))

	reloaded := View(buf)
	assert.Equal(t, 2, reloaded.Segs.Len())
}

func TestEstimateToc(t *testing.T) {
	text := []byte("H\tVN:Z:1.0\nS\t1\tAAAA\nS\t2\tCC\nL\t1\t+\t2\t-\t2M\nP\tx\t1+,2-\t*\n")
	toc := EstimateToc(text)
	assert.Equal(t, uint64(2), toc.Segs.Capacity)
	assert.Equal(t, uint64(1), toc.Links.Capacity)
	assert.Equal(t, uint64(1), toc.Paths.Capacity)
}

func TestParallelEstimateTocMatchesEstimateToc(t *testing.T) {
	text := []byte("H\tVN:Z:1.0\nS\t1\tAAAA\nS\t2\tCC\nL\t1\t+\t2\t-\t2M\nP\tx\t1+,2-\t*\n")
	assert.Equal(t, EstimateToc(text), ParallelEstimateToc(text))
}

func TestGuessScalesWithFactor(t *testing.T) {
	small := Guess(1)
	big := Guess(2)
	assert.Less(t, small.Segs.Capacity, big.Segs.Capacity)
	assert.Less(t, small.Steps.Capacity, big.Steps.Capacity)
}

func TestReadTocRejectsBadMagic(t *testing.T) {
	buf := make([]byte, TocBytes)
	assert.Panics(t, func() {
		readToc(buf)
	})
}
