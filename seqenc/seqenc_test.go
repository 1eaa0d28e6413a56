package seqenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	seq := []byte("ACGTACGTA")
	p, err := Pack(seq)
	require.NoError(t, err)
	assert.Equal(t, len(seq), p.Len())
	assert.Equal(t, seq, Unpack(p))
}

func TestPackRejectsNonACGT(t *testing.T) {
	_, err := Pack([]byte("ACGN"))
	assert.Error(t, err)
}

func TestReverseComplementASCII(t *testing.T) {
	seq := []byte("ACGTN")
	ReverseComplementASCII(seq)
	assert.Equal(t, "NACGT", string(seq))
}

func TestReverseComplementPacked(t *testing.T) {
	p, err := Pack([]byte("AACG"))
	require.NoError(t, err)
	rc := ReverseComplementPacked(p)
	assert.Equal(t, "CGTT", string(Unpack(rc)))
}
