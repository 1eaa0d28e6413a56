package seqenc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFastaPacksEachSequence(t *testing.T) {
	data := ">chr1 a comment\nACGT\nACGT\n>chr2\nTTTT\n"
	f, err := ReadFasta(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"chr1", "chr2"}, f.SeqNames())

	p, ok := f.Get("chr1")
	require.True(t, ok)
	assert.Equal(t, "ACGTACGT", string(Unpack(p)))

	p2, ok := f.Get("chr2")
	require.True(t, ok)
	assert.Equal(t, "TTTT", string(Unpack(p2)))

	_, ok = f.Get("chr3")
	assert.False(t, ok)
}

func TestReadFastaRejectsBadBase(t *testing.T) {
	_, err := ReadFasta(strings.NewReader(">x\nACGN\n"))
	assert.Error(t, err)
}
