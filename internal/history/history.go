// Package history keeps a bounded record of population per generation.
package history

import "github.com/guptarohit/asciigraph"

// Recorder is a ring buffer of the most recent population samples.
type Recorder struct {
	samples []int
	start   int
	n       int
	lastGen uint64
	peak    int
}

// NewRecorder returns a Recorder holding up to capacity samples.
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = 1
	}
	return &Recorder{samples: make([]int, capacity)}
}

// Record appends the population observed at generation, evicting the oldest
// sample when full.
func (r *Recorder) Record(generation uint64, population int) {
	if r.n < len(r.samples) {
		r.samples[(r.start+r.n)%len(r.samples)] = population
		r.n++
	} else {
		r.samples[r.start] = population
		r.start = (r.start + 1) % len(r.samples)
	}
	r.lastGen = generation
	if population > r.peak {
		r.peak = population
	}
}

// Len returns the number of stored samples.
func (r *Recorder) Len() int { return r.n }

// Last returns the most recent sample and its generation.
func (r *Recorder) Last() (generation uint64, population int, ok bool) {
	if r.n == 0 {
		return 0, 0, false
	}
	return r.lastGen, r.samples[(r.start+r.n-1)%len(r.samples)], true
}

// Peak returns the largest population ever recorded, including evicted samples.
func (r *Recorder) Peak() int { return r.peak }

// Values returns the stored samples oldest first.
func (r *Recorder) Values() []float64 {
	out := make([]float64, r.n)
	for i := range out {
		out[i] = float64(r.samples[(r.start+i)%len(r.samples)])
	}
	return out
}

// Plot draws the stored samples as an ASCII line chart. It returns an empty
// string when nothing has been recorded.
func (r *Recorder) Plot(width, height int, caption string) string {
	if r.n == 0 {
		return ""
	}
	opts := []asciigraph.Option{asciigraph.Height(height)}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.Plot(r.Values(), opts...)
}
