package gfaparse

import (
	"strings"
	"testing"

	"github.com/grailbio/flatgfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyGFA = "H\tVN:Z:1.0\n" +
	"S\t1\tAAAA\n" +
	"S\t2\tCC\n" +
	"L\t1\t+\t2\t-\t2M\n" +
	"P\tx\t1+,2-\t*\n"

func TestParseMem(t *testing.T) {
	store := flatgfa.NewHeapGFAStore()
	p := NewParser(store)
	_, err := p.ParseMem([]byte(tinyGFA))
	require.NoError(t, err)

	g := store.View()
	require.Equal(t, 2, g.Segs.Len())
	require.Equal(t, 1, g.Links.Len())
	require.Equal(t, 1, g.Paths.Len())

	seg1, ok := g.FindSeg(1)
	require.True(t, ok)
	assert.Equal(t, "AAAA", string(g.GetSeq(g.Segs.At(seg1))))

	path, ok := g.FindPath([]byte("x"))
	require.True(t, ok)
	steps := g.GetSteps(g.Paths.At(path))
	require.Len(t, steps, 2)
	assert.Equal(t, flatgfa.Forward, steps[0].Orient())
	assert.Equal(t, flatgfa.Backward, steps[1].Orient())

	order := g.GetLineOrder()
	require.Len(t, order, 5)
	assert.Equal(t, flatgfa.LineHeader, order[0])
	assert.Equal(t, flatgfa.LinePath, order[4])
}

func TestParseStream(t *testing.T) {
	store := flatgfa.NewHeapGFAStore()
	p := NewParser(store)
	_, err := p.ParseStream(strings.NewReader(tinyGFA))
	require.NoError(t, err)

	g := store.View()
	assert.Equal(t, 2, g.Segs.Len())
	assert.Equal(t, 1, g.Links.Len())
	assert.Equal(t, 1, g.Paths.Len())
}

func TestParseOutOfOrderSegmentNames(t *testing.T) {
	text := "S\t5\tAAAA\n" +
		"S\t2\tCC\n" +
		"L\t5\t+\t2\t+\t*\n"
	store := flatgfa.NewHeapGFAStore()
	p := NewParser(store)
	_, err := p.ParseMem([]byte(text))
	require.NoError(t, err)

	g := store.View()
	link := g.Links.At(0)
	seg5, _ := g.FindSeg(5)
	seg2, _ := g.FindSeg(2)
	assert.Equal(t, seg5, link.From.Segment())
	assert.Equal(t, seg2, link.To.Segment())
}

func TestParseCigar(t *testing.T) {
	ops, err := parseCigar([]byte("3M1D2M"))
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, flatgfa.OpMatch, ops[0].Op())
	assert.Equal(t, uint32(3), ops[0].Len())
	assert.Equal(t, flatgfa.OpDeletion, ops[1].Op())

	empty, err := parseCigar([]byte("*"))
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestParseCigarRejectsUnknownOpcode(t *testing.T) {
	_, err := parseCigar([]byte("3=2X"))
	assert.Error(t, err)
}

func TestStepsParser(t *testing.T) {
	sp := newStepsParser([]byte("1+,23-,4+\tsuffix"))
	var got [][2]uint64
	for {
		name, orient, ok := sp.next()
		if !ok {
			break
		}
		o := uint64(0)
		if orient == flatgfa.Forward {
			o = 1
		}
		got = append(got, [2]uint64{name, o})
	}
	require.Equal(t, [][2]uint64{{1, 1}, {23, 0}, {4, 1}}, got)
	assert.Equal(t, "\tsuffix", string(sp.rest()))
}

func TestNameMapSequentialAndSparse(t *testing.T) {
	var m NameMap
	m.Insert(1, 0)
	m.Insert(2, 1)
	m.Insert(2000, 2)
	m.Insert(3, 3)

	assert.Equal(t, uint32(0), m.Get(1))
	assert.Equal(t, uint32(1), m.Get(2))
	assert.Equal(t, uint32(2), m.Get(2000))
	assert.Equal(t, uint32(3), m.Get(3))
}
