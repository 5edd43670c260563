package parallel

import (
	"time"

	"github.com/mwbaxter/skypaint/rand"
)

// Weyl increment, used to decorrelate per-chunk seeds.
const seedStep = 0x9e3779b97f4a7c15

// RandomFill fills xs with independent uniform draws from [low, high),
// dispatching chunks of the given size across goroutines. Each chunk writes
// to a disjoint slice of xs and owns its own generator, so no locking is
// needed and every element is written exactly once.
func RandomFill(xs []float64, low, high float64, chunkSize int) error {
	chunks, err := Chunk(len(xs), chunkSize)
	if err != nil {
		return err
	}

	base := uint64(time.Now().UnixNano())
	out := make(chan int, len(chunks))
	for ci := range chunks {
		go func(ci int) {
			gen := rand.New(rand.Xorshift, base+seedStep*uint64(ci+1))
			c := chunks[ci]
			gen.UniformAt(low, high, xs[c.Start-1:c.End])
			out <- ci
		}(ci)
	}
	for range chunks {
		<-out
	}
	return nil
}
