package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwbaxter/skypaint/rand"
)

func TestBuildOffsets(t *testing.T) {
	assert.Equal(t, []int64{0, 2, 2, 5}, BuildOffsets([]int64{2, 0, 3}))
	assert.Equal(t, []int64{0}, BuildOffsets([]int64{}))
	assert.Equal(t, []int64{0, 0, 0}, BuildOffsets([]int64{0, 0}))
}

func TestBuildOffsetsProperties(t *testing.T) {
	gen := rand.New(rand.Xorshift, 7)
	counts := make([]int64, 1000)
	total := int64(0)
	for i := range counts {
		counts[i] = int64(gen.UniformInt(0, 20))
		total += counts[i]
	}

	offsets := BuildOffsets(counts)
	assert.Equal(t, len(counts)+1, len(offsets))
	assert.Equal(t, int64(0), offsets[0])
	assert.Equal(t, total, offsets[len(offsets)-1])
	for i := 0; i < len(counts); i++ {
		assert.Equal(t, counts[i], offsets[i+1]-offsets[i])
	}
}

func TestCatalogLen(t *testing.T) {
	c := New(12)
	assert.Equal(t, 12, c.Len())
	assert.Equal(t, 12, len(c.Ms))
}
