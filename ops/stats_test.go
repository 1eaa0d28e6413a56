package ops

import (
	"testing"

	"github.com/grailbio/flatgfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTOCSummary(t *testing.T) {
	s, _ := buildChain(t)
	g := s.View()

	toc := BuildTOCSummary(g)
	assert.Equal(t, 4, toc.Segs)
	assert.Equal(t, 3, toc.Links)
	assert.Equal(t, 1, toc.Paths)
	assert.Equal(t, 4, toc.Steps)
	assert.Equal(t, 16, toc.SeqData)
}

func TestPathNames(t *testing.T) {
	s, _ := buildChain(t)
	g := s.View()
	require.Equal(t, []string{"p"}, PathNames(g))
}

func TestStats(t *testing.T) {
	s, _ := buildChain(t)
	g := s.View()

	stats := Stats(g)
	assert.Equal(t, 16, stats.Length)
	assert.Equal(t, 4, stats.Nodes)
	assert.Equal(t, 3, stats.Edges)
	assert.Equal(t, 1, stats.Paths)
	assert.Equal(t, 4, stats.Steps)
}

func TestSelfLoops(t *testing.T) {
	s := flatgfa.NewHeapGFAStore()
	seg1 := s.AddSeg(1, []byte("AA"), nil)
	seg2 := s.AddSeg(2, []byte("AA"), nil)
	s.AddLink(flatgfa.NewHandle(seg1, flatgfa.Forward), flatgfa.NewHandle(seg1, flatgfa.Forward), nil)
	s.AddLink(flatgfa.NewHandle(seg1, flatgfa.Forward), flatgfa.NewHandle(seg1, flatgfa.Backward), nil)
	s.AddLink(flatgfa.NewHandle(seg1, flatgfa.Forward), flatgfa.NewHandle(seg2, flatgfa.Forward), nil)
	g := s.View()

	total, unique := SelfLoops(g)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, unique)
}
