// Package profiler provides lightweight frame-phase timing hooks. The
// render engines accept a ProfilerGroup and report spans for the phases of
// each frame; a nil group costs nothing.
package profiler

import (
	"sync"
	"time"
)

type ProfilerGroup interface {
	Start(label string) ProfilerGroup
	End()
}

// Start opens a span on g, tolerating a nil group.
func Start(g ProfilerGroup, label string) ProfilerGroup {
	if g == nil {
		return nil
	}
	return g.Start(label)
}

// End closes a span opened by Start, tolerating a nil group.
func End(g ProfilerGroup) {
	if g != nil {
		g.End()
	}
}

// Recorder is a ProfilerGroup that accumulates wall-clock durations per
// label. Nested spans get slash-separated labels ("render/map").
type Recorder struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	counts map[string]int
}

func NewRecorder() *Recorder {
	return &Recorder{
		totals: make(map[string]time.Duration),
		counts: make(map[string]int),
	}
}

func (r *Recorder) Start(label string) ProfilerGroup {
	return &span{rec: r, label: label, begin: time.Now()}
}

// End on the recorder itself is a no-op; only spans accumulate time.
func (r *Recorder) End() {}

// Total returns the accumulated duration and span count for a label.
func (r *Recorder) Total(label string) (time.Duration, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totals[label], r.counts[label]
}

// Mean returns the average span duration for a label, or zero if the label
// was never recorded.
func (r *Recorder) Mean(label string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.counts[label]
	if n == 0 {
		return 0
	}
	return r.totals[label] / time.Duration(n)
}

func (r *Recorder) record(label string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totals[label] += d
	r.counts[label]++
}

type span struct {
	rec   *Recorder
	label string
	begin time.Time
}

func (s *span) Start(label string) ProfilerGroup {
	return &span{rec: s.rec, label: s.label + "/" + label, begin: time.Now()}
}

func (s *span) End() {
	s.rec.record(s.label, time.Since(s.begin))
}
