package flatgfa

import (
	"testing"

	"github.com/grailbio/flatgfa/gfapool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTinyGraph constructs the S1 scenario from the design notes:
//
//	H	VN:Z:1.0
//	S	1	AAAA
//	S	2	CC
//	L	1	+	2	-	2M
//	P	x	1+,2-	*
func buildTinyGraph(t *testing.T) *GFAStore {
	t.Helper()
	s := NewHeapGFAStore()
	s.AddHeader([]byte("VN:Z:1.0"))
	seg1 := s.AddSeg(1, []byte("AAAA"), nil)
	seg2 := s.AddSeg(2, []byte("CC"), nil)
	from := NewHandle(seg1, Forward)
	to := NewHandle(seg2, Backward)
	s.AddLink(from, to, []AlignOp{NewAlignOp(OpMatch, 2)})
	steps := s.AddSteps([]Handle{from, to})
	s.AddPath([]byte("x"), steps, nil)
	return s
}

func TestBuildAndView(t *testing.T) {
	s := buildTinyGraph(t)
	g := s.View()

	require.Equal(t, 2, g.Segs.Len())
	require.Equal(t, 1, g.Links.Len())
	require.Equal(t, 1, g.Paths.Len())
	require.Equal(t, 2, g.Steps.Len())
	assert.Equal(t, "AAAACC", string(g.SeqData.All()))

	seg1, ok := g.FindSeg(1)
	require.True(t, ok)
	assert.Equal(t, "AAAA", string(g.GetSeq(g.Segs.At(seg1))))

	pathID, ok := g.FindPath([]byte("x"))
	require.True(t, ok)
	path := g.Paths.At(pathID)
	assert.Equal(t, "x", string(g.GetPathName(path)))
	assert.True(t, path.Overlaps.IsEmpty())

	steps := g.GetSteps(path)
	require.Len(t, steps, 2)
	assert.Equal(t, Forward, steps[0].Orient())
	assert.Equal(t, Backward, steps[1].Orient())
}

func TestHandleRoundTrip(t *testing.T) {
	for _, orient := range []Orientation{Forward, Backward} {
		for _, idx := range []int{0, 1, 42, 1<<20 - 1} {
			seg := gfapool.NewId[Segment](idx)
			h := NewHandle(seg, orient)
			assert.Equal(t, seg, h.Segment())
			assert.Equal(t, orient, h.Orient())
		}
	}
}

func TestAlignOpRoundTrip(t *testing.T) {
	for _, op := range []AlignOpcode{OpMatch, OpGap, OpDeletion, OpInsertion} {
		for _, length := range []uint32{0, 1, 255, 1<<24 - 1} {
			a := NewAlignOp(op, length)
			assert.Equal(t, op, a.Op())
			assert.Equal(t, length, a.Len())
		}
	}
}

func TestAlignOpPanicsOnOverflow(t *testing.T) {
	assert.Panics(t, func() {
		NewAlignOp(OpMatch, 1<<24)
	})
}

func TestHandlePanicsOnOverflow(t *testing.T) {
	assert.Panics(t, func() {
		NewHandle(gfapool.NewId[Segment](1<<31), Forward)
	})
}

func TestFormatAlignment(t *testing.T) {
	assert.Equal(t, "*", FormatAlignment(nil))
	assert.Equal(t, "3M1D2M", FormatAlignment([]AlignOp{
		NewAlignOp(OpMatch, 3),
		NewAlignOp(OpDeletion, 1),
		NewAlignOp(OpMatch, 2),
	}))
}

func TestLinkIncidentSeg(t *testing.T) {
	s := NewHeapGFAStore()
	seg1 := s.AddSeg(1, []byte("A"), nil)
	seg2 := s.AddSeg(2, []byte("C"), nil)
	link := Link{From: NewHandle(seg1, Forward), To: NewHandle(seg2, Forward)}

	other, ok := link.IncidentSeg(seg1)
	require.True(t, ok)
	assert.Equal(t, seg2, other)

	other, ok = link.IncidentSeg(seg2)
	require.True(t, ok)
	assert.Equal(t, seg1, other)

	seg3 := gfapool.NewId[Segment](2)
	_, ok = link.IncidentSeg(seg3)
	assert.False(t, ok)
}
