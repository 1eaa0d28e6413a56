package gfaprint

import (
	"strings"
	"testing"

	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfaparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyGFA = "H\tVN:Z:1.0\n" +
	"S\t1\tAAAA\n" +
	"S\t2\tCC\n" +
	"L\t1\t+\t2\t-\t2M\n" +
	"P\tx\t1+,2-\t*\n"

func TestPrintPreservesLineOrder(t *testing.T) {
	store := flatgfa.NewHeapGFAStore()
	_, err := gfaparse.NewParser(store).ParseMem([]byte(tinyGFA))
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, Print(&out, store.View()))
	assert.Equal(t, tinyGFA, out.String())
}

func TestPrintNormalizedWithoutLineOrder(t *testing.T) {
	s := flatgfa.NewHeapGFAStore()
	s.AddHeader([]byte("VN:Z:1.0"))
	seg1 := s.AddSeg(1, []byte("AAAA"), nil)
	seg2 := s.AddSeg(2, []byte("CC"), nil)
	from := flatgfa.NewHandle(seg1, flatgfa.Forward)
	to := flatgfa.NewHandle(seg2, flatgfa.Backward)
	s.AddLink(from, to, []flatgfa.AlignOp{flatgfa.NewAlignOp(flatgfa.OpMatch, 2)})
	steps := s.AddSteps([]flatgfa.Handle{from, to})
	s.AddPath([]byte("x"), steps, nil)

	const wantNormalized = "H\tVN:Z:1.0\n" +
		"S\t1\tAAAA\n" +
		"S\t2\tCC\n" +
		"P\tx\t1+,2-\t*\n" +
		"L\t1\t+\t2\t-\t2M\n"

	var out strings.Builder
	require.NoError(t, Print(&out, s.View()))
	assert.Equal(t, wantNormalized, out.String())
}
