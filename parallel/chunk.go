/*package parallel contains the index-partitioning routines that the rest of
the pipeline uses to split per-halo and per-source loops across workers.
Ranges are 1-based and inclusive on both ends, matching the convention of the
catalogs this code descends from; callers slicing a Go array use
xs[r.Start-1 : r.End].
*/
package parallel

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every error returned for malformed
// partitioning parameters.
var ErrInvalidArgument = errors.New("invalid argument")

// Range is a contiguous, 1-based, inclusive index range. A Range with
// End < Start is empty.
type Range struct {
	Start, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Chunk splits [1, length] into ordered contiguous ranges of the given size.
// Every chunk except possibly the last has exactly size elements, and the
// chunks cover the interval exactly once.
func Chunk(length, size int) ([]Range, error) {
	if size <= 0 {
		return nil, fmt.Errorf(
			"%w: chunk size is %d, must be positive", ErrInvalidArgument, size,
		)
	}
	if length < 0 {
		return nil, fmt.Errorf(
			"%w: length is %d, must be non-negative", ErrInvalidArgument, length,
		)
	}

	n := (length + size - 1) / size
	chunks := make([]Range, n)
	for i := range chunks {
		chunks[i].Start = i*size + 1
		chunks[i].End = (i + 1) * size
	}
	if n > 0 {
		chunks[n-1].End = length
	}
	return chunks, nil
}

// WorkerRange statically partitions [1, total] into workers near-equal
// contiguous ranges and returns the one assigned to the 1-based worker id.
// Range sizes across workers differ by at most one.
func WorkerRange(total, workers, id int) (Range, error) {
	if workers <= 0 {
		return Range{}, fmt.Errorf(
			"%w: worker count is %d, must be positive", ErrInvalidArgument, workers,
		)
	}
	if id < 1 || id > workers {
		return Range{}, fmt.Errorf(
			"%w: worker id is %d, must be in [1, %d]",
			ErrInvalidArgument, id, workers,
		)
	}
	if total < 0 {
		return Range{}, fmt.Errorf(
			"%w: total length is %d, must be non-negative",
			ErrInvalidArgument, total,
		)
	}

	// The first total % workers workers each take one extra index.
	base, rem := total/workers, total%workers
	start := (id-1)*base + min(id-1, rem)
	size := base
	if id <= rem {
		size++
	}
	return Range{start + 1, start + size}, nil
}
