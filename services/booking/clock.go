package booking

import "time"

// Clock supplies the current instant. Injected so the completion time-gate
// and date validation are testable.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock is the production clock.
var SystemClock Clock = realClock{}
