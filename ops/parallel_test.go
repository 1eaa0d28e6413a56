package ops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallelGAFScan(t *testing.T) {
	s, _ := buildChain(t)
	g := s.View()
	nameMap := BuildSegNameMap(g)

	line, err := ParseGAFLine([]byte("read1\t16\t0\t16\t+\t>1>2>3>4\t16\t2\t10\t8\t8\t60"))
	require.NoError(t, err)
	reads := []GAFLine{line, line, line}

	got := ParallelGAFScan(g, nameMap, reads)
	require.Equal(t, 12, got) // 4 chunk events per read, 3 reads
}

func TestParallelGAFScanEmpty(t *testing.T) {
	s, _ := buildChain(t)
	g := s.View()
	nameMap := BuildSegNameMap(g)
	require.Equal(t, 0, ParallelGAFScan(g, nameMap, nil))
}
