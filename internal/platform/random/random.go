package random

import (
	"math/rand"
	"time"
)

// Source abstracts the shuffle source so sampling stays reproducible under a
// fixed seed in tests.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

type MathSource struct {
	r *rand.Rand
}

func NewMathSource(seed int64) *MathSource {
	return &MathSource{r: rand.New(rand.NewSource(seed))}
}

// NewSystemSource seeds from the current time, for interactive runs.
func NewSystemSource() *MathSource {
	return NewMathSource(time.Now().UnixNano())
}

func (s *MathSource) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}
