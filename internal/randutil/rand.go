package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewFromSeedOrTime returns New(seed) for a non-zero seed and a clock-seeded
// generator otherwise. A zero seed in config means "pick one for me".
func NewFromSeedOrTime(seed int64, now time.Time) (*rand.Rand, int64) {
	if seed == 0 {
		seed = now.UnixNano()
	}
	return New(seed), seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Sequence is a scripted source that replays fixed values for IntN. Values
// are reduced modulo n and the script wraps around when exhausted.
type Sequence struct {
	values []int
	pos    int
}

// NewSequence creates a scripted source. It panics on an empty script.
func NewSequence(values ...int) *Sequence {
	if len(values) == 0 {
		panic("sequence requires at least one value")
	}
	return &Sequence{values: values}
}

// IntN returns the next scripted value reduced into [0, n).
func (s *Sequence) IntN(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
