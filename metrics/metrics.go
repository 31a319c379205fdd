// Package metrics measures encode and decode operations: durations,
// expansion ratios and throughput. It knows nothing about the codec beyond
// input and output lengths, so it instruments any string-to-string
// operation.
package metrics

import (
	"fmt"
	"math"
	"time"
)

// Result captures one measured operation.
type Result struct {
	InputLength  int
	OutputLength int
	Duration     time.Duration
}

// Ratio returns output length relative to input length. An empty input
// reports 1.
func (r Result) Ratio() float64 {
	if r.InputLength == 0 {
		return 1
	}

	return float64(r.OutputLength) / float64(r.InputLength)
}

// RatioPercent returns the expansion ratio as a rounded percentage.
func (r Result) RatioPercent() int {
	return int(math.Round(r.Ratio() * 100))
}

// Throughput returns input characters processed per millisecond, or 0 when
// no time elapsed.
func (r Result) Throughput() float64 {
	if r.Duration <= 0 {
		return 0
	}

	return float64(r.InputLength) / (float64(r.Duration) / float64(time.Millisecond))
}

// Summary renders a one-line report.
func (r Result) Summary() string {
	return fmt.Sprintf("%d%% expansion, %.2fms, %.0f chars/ms",
		r.RatioPercent(),
		float64(r.Duration)/float64(time.Millisecond),
		r.Throughput())
}

// Timer measures a single operation from Start to Finish.
type Timer struct {
	start       time.Time
	inputLength int
}

func Start(inputLength int) *Timer {
	return &Timer{
		start:       time.Now(),
		inputLength: inputLength,
	}
}

func (t *Timer) Finish(outputLength int) Result {
	return Result{
		InputLength:  t.inputLength,
		OutputLength: outputLength,
		Duration:     time.Since(t.start),
	}
}

// Measure runs op over input and reports its output alongside the
// measurement. No measurement is reported when op fails.
func Measure(input string, op func(string) (string, error)) (string, Result, error) {
	timer := Start(len(input))

	out, err := op(input)
	if err != nil {
		return "", Result{}, err
	}

	return out, timer.Finish(len(out)), nil
}
