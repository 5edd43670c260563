package parallel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	table := []struct {
		length, size int
		chunks       []Range
	}{
		{10, 3, []Range{{1, 3}, {4, 6}, {7, 9}, {10, 10}}},
		{9, 3, []Range{{1, 3}, {4, 6}, {7, 9}}},
		{3, 10, []Range{{1, 3}}},
		{1, 1, []Range{{1, 1}}},
		{0, 4, []Range{}},
	}

	for i, test := range table {
		chunks, err := Chunk(test.length, test.size)
		assert.NoError(t, err, "test %d", i)
		assert.Equal(t, test.chunks, chunks, "test %d", i)
	}
}

func TestChunkCoverage(t *testing.T) {
	for _, length := range []int{1, 7, 100, 1000} {
		for _, size := range []int{1, 3, 7, 64, 2000} {
			chunks, err := Chunk(length, size)
			assert.NoError(t, err)

			seen := make([]int, length+1)
			for _, c := range chunks {
				for i := c.Start; i <= c.End; i++ {
					seen[i]++
				}
			}
			for i := 1; i <= length; i++ {
				assert.Equal(t, 1, seen[i],
					"index %d covered %d times for L=%d, C=%d",
					i, seen[i], length, size)
			}
		}
	}
}

func TestChunkInvalidArgument(t *testing.T) {
	_, err := Chunk(10, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = Chunk(10, -2)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = Chunk(-1, 3)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestWorkerRange(t *testing.T) {
	sizes := []int{}
	for id := 1; id <= 3; id++ {
		r, err := WorkerRange(10, 3, id)
		assert.NoError(t, err)
		sizes = append(sizes, r.Len())
	}
	assert.Equal(t, []int{4, 3, 3}, sizes)
}

func TestWorkerRangePartition(t *testing.T) {
	for _, total := range []int{0, 1, 10, 97, 1024} {
		for _, workers := range []int{1, 2, 3, 16, 100} {
			seen := make([]int, total+1)
			prevEnd := 0
			for id := 1; id <= workers; id++ {
				r, err := WorkerRange(total, workers, id)
				assert.NoError(t, err)
				if r.Len() > 0 {
					assert.Equal(t, prevEnd+1, r.Start,
						"gap before worker %d for total=%d, workers=%d",
						id, total, workers)
					prevEnd = r.End
				}
				for i := r.Start; i <= r.End; i++ {
					seen[i]++
				}
			}
			assert.Equal(t, total, prevEnd)
			for i := 1; i <= total; i++ {
				assert.Equal(t, 1, seen[i])
			}
		}
	}
}

func TestWorkerRangeInvalidArgument(t *testing.T) {
	_, err := WorkerRange(10, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = WorkerRange(10, 3, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = WorkerRange(10, 3, 4)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = WorkerRange(-5, 3, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
