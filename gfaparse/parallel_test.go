package gfaparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelLineCount(t *testing.T) {
	buf := []byte(tinyGFA)

	got := ParallelLineCount(buf)
	assert.Equal(t, 1, got.Lines['H'])
	assert.Equal(t, 2, got.Lines['S'])
	assert.Equal(t, 1, got.Lines['L'])
	assert.Equal(t, 1, got.Lines['P'])

	want := countLines(buf)
	assert.Equal(t, want.Lines, got.Lines)
	assert.Equal(t, want.Bytes, got.Bytes)
}

func TestSplitIntoChunksPreservesLines(t *testing.T) {
	buf := []byte(tinyGFA)
	chunks := splitIntoChunks(buf, 3)

	var reassembled []byte
	for _, c := range chunks {
		reassembled = append(reassembled, c...)
	}
	assert.Equal(t, buf, reassembled)
	for i, c := range chunks {
		if i < len(chunks)-1 {
			assert.Equal(t, byte('\n'), c[len(c)-1])
		}
	}
}

func TestSplitIntoChunksEmpty(t *testing.T) {
	assert.Nil(t, splitIntoChunks(nil, 4))
}
