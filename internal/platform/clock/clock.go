package clock

import "time"

// Clock abstracts wall time so drill transitions and the countdown stay
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
