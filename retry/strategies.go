package retry

import (
	"math"
	"math/rand"
	"time"
)

// Strategy determines how long to wait between retry attempts.
type Strategy interface {
	// Duration returns how long to wait for a given retry attempt.
	Duration(attempt int) time.Duration
}

// ExponentialStrategy performs exponential backoff with jitter, capped at Max.
type ExponentialStrategy struct {
	Min       time.Duration
	Max       time.Duration
	MaxJitter time.Duration
}

func (e *ExponentialStrategy) Duration(attempt int) time.Duration {
	var jitter time.Duration
	if e.MaxJitter > 0 {
		jitter = time.Duration(rand.Int63n(e.MaxJitter.Nanoseconds()))
	}
	if attempt < 0 {
		return e.Min + jitter
	}
	durFloat := float64(e.Min)
	durFloat *= math.Pow(2, float64(attempt))
	dur := time.Duration(durFloat)
	if durFloat > float64(e.Max) {
		dur = e.Max
	}
	dur += jitter

	return dur
}

func Exponential() Strategy {
	return &ExponentialStrategy{
		Min:       time.Second,
		Max:       time.Duration(10) * time.Second,
		MaxJitter: time.Duration(250) * time.Millisecond,
	}
}

// FixedStrategy waits a fixed duration between attempts.
type FixedStrategy struct {
	Dur time.Duration
}

func (f *FixedStrategy) Duration(attempt int) time.Duration {
	return f.Dur
}

func Fixed(t time.Duration) Strategy {
	return &FixedStrategy{
		Dur: t,
	}
}
