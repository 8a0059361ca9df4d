package form

import "time"

const (
	// trendMinSamples is how many discharge readings are needed before an
	// estimate is offered.
	trendMinSamples = 3
	// trendMinSpan is the minimum elapsed time across the window; rates
	// computed over shorter spans are too noisy to show.
	trendMinSpan = 2 * time.Minute
	// trendWindow caps how many samples the window retains.
	trendWindow = 32
)

type trendSample struct {
	level int
	at    time.Time
}

// TrendEstimator derives an hours-remaining figure for the battery from
// successive discharge readings. Charging readings clear the window, since
// a rate computed across a phase change is meaningless.
type TrendEstimator struct {
	samples []trendSample
}

// NewTrendEstimator creates an empty estimator.
func NewTrendEstimator() *TrendEstimator {
	return &TrendEstimator{}
}

// Record feeds one battery reading. Negative values mean the headset is
// charging and reset the discharge window.
func (t *TrendEstimator) Record(level int, at time.Time) {
	if level < 0 {
		t.samples = t.samples[:0]
		return
	}

	// A level rise without a charging report also invalidates the window.
	if n := len(t.samples); n > 0 && level > t.samples[n-1].level {
		t.samples = t.samples[:0]
	}

	t.samples = append(t.samples, trendSample{level: level, at: at})
	if len(t.samples) > trendWindow {
		t.samples = t.samples[1:]
	}
}

// Estimate returns the projected hours until empty based on the current
// window. ok is false until enough history exists or while the level is
// flat.
func (t *TrendEstimator) Estimate() (hours float64, ok bool) {
	n := len(t.samples)
	if n < trendMinSamples {
		return 0, false
	}

	first, last := t.samples[0], t.samples[n-1]
	span := last.at.Sub(first.at)
	drop := first.level - last.level
	if span < trendMinSpan || drop <= 0 {
		return 0, false
	}

	ratePerHour := float64(drop) / span.Hours()
	return float64(last.level) / ratePerHour, true
}
