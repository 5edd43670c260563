/*package rand supplies the small non-cryptographic generators used by the
painting pipeline. Parallel loops hand each worker its own Generator so that
no draw ever touches shared state.
*/
package rand

import (
	"time"
)

type GeneratorType int

const (
	Xorshift GeneratorType = iota

	DefaultGeneratorType = Xorshift
)

// Generator produces uniform random numbers from a chunk-local state. It is
// not safe for concurrent use; give every goroutine its own instance.
type Generator struct {
	state uint64
}

// New creates a Generator of the given type from an explicit seed. Two
// Generators with the same seed produce the same sequence.
func New(gt GeneratorType, seed uint64) *Generator {
	if gt != Xorshift {
		panic("Unrecognized GeneratorType.")
	}
	if seed == 0 {
		// xorshift sticks at zero.
		seed = 0x9e3779b97f4a7c15
	}
	return &Generator{state: seed}
}

// NewTimeSeed creates a Generator seeded off the wall clock.
func NewTimeSeed(gt GeneratorType) *Generator {
	return New(gt, uint64(time.Now().UnixNano()))
}

func (gen *Generator) next() uint64 {
	x := gen.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	gen.state = x
	return x * 2685821657736338717
}

// Uniform returns a draw from [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	u := float64(gen.next()>>11) / (1 << 53)
	return low + u*(high-low)
}

// UniformAt fills target with independent draws from [low, high).
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	for i := range target {
		target[i] = gen.Uniform(low, high)
	}
}

// UniformInt returns a draw from the integers [low, high).
func (gen *Generator) UniformInt(low, high int) int {
	return low + int(gen.next()%uint64(high-low))
}
