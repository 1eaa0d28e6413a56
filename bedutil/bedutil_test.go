package bedutil

import (
	"strings"
	"testing"

	"github.com/grailbio/flatgfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalsContainsMergesOverlaps(t *testing.T) {
	iv := NewIntervals(
		[]PosType{5, 7, 20},
		[]PosType{15, 17, 25},
	)
	assert.False(t, iv.Contains(0))
	assert.True(t, iv.Contains(5))
	assert.True(t, iv.Contains(16))
	assert.False(t, iv.Contains(18))
	assert.True(t, iv.Contains(20))
	assert.False(t, iv.Contains(25))
}

func TestReadBED(t *testing.T) {
	data := "chr1\t5\t15\nchr1\t7\t17\nchr2\t20\t25\n"
	reg, err := ReadBED(strings.NewReader(data))
	require.NoError(t, err)
	assert.True(t, reg.Contains("chr1", 10))
	assert.False(t, reg.Contains("chr1", 18))
	assert.True(t, reg.Contains("chr2", 22))
	assert.False(t, reg.Contains("chr3", 0))
}

func TestPathCoverage(t *testing.T) {
	s := flatgfa.NewHeapGFAStore()
	seg := s.AddSeg(1, []byte("AAAAAAAAAA"), nil) // 10bp
	steps := s.AddSteps([]flatgfa.Handle{flatgfa.NewHandle(seg, flatgfa.Forward)})
	s.AddPath([]byte("p"), steps, nil)
	g := s.View()
	path := g.Paths.At(0)

	reg, err := ReadBED(strings.NewReader("p\t2\t6\n"))
	require.NoError(t, err)

	covered := PathCoverage(g, path, reg, []int{0, 3, 8, 20})
	assert.Equal(t, []bool{false, true, false, false}, covered)
}
