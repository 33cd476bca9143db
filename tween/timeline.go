package tween

import "math"

// Step tweens the value from wherever the previous step left it to To. The
// value holds during Delay, then moves over Duration seconds.
type Step struct {
	Name     string
	To       float64
	Delay    float64
	Duration float64
	Ease     EaseFunc
}

// Timeline plays its steps back to back. Repeat is the number of extra
// plays; a negative Repeat loops forever. Every play restarts from From.
type Timeline struct {
	From   float64
	Steps  []Step
	Repeat int
}

// CycleDuration is the length of one play of all steps.
func (tl *Timeline) CycleDuration() float64 {
	if tl == nil {
		return 0
	}
	total := 0.0
	for _, s := range tl.Steps {
		total += s.Delay + s.Duration
	}
	return total
}

// TotalDuration is +Inf for an infinitely repeating timeline.
func (tl *Timeline) TotalDuration() float64 {
	if tl == nil {
		return 0
	}
	if tl.Repeat < 0 {
		return math.Inf(1)
	}
	return tl.CycleDuration() * float64(tl.Repeat+1)
}

// Done reports whether the timeline has finished at elapsed time t.
func (tl *Timeline) Done(t float64) bool {
	return t >= tl.TotalDuration()
}

// Value returns the tweened value at elapsed time t.
func (tl *Timeline) Value(t float64) float64 {
	v, _ := tl.sample(t)
	return v
}

// Phase returns the index and name of the step active at t, counting a
// step's delay as part of it. Before the start it reports step 0, after a
// finite timeline ends it reports the last step.
func (tl *Timeline) Phase(t float64) (int, string) {
	_, idx := tl.sample(t)
	if idx < 0 {
		return -1, ""
	}
	return idx, tl.Steps[idx].Name
}

func (tl *Timeline) sample(t float64) (float64, int) {
	if tl == nil || len(tl.Steps) == 0 {
		return 0, -1
	}
	cycle := tl.CycleDuration()
	if t <= 0 || cycle <= 0 {
		return tl.From, 0
	}
	if tl.Done(t) {
		last := len(tl.Steps) - 1
		return tl.Steps[last].To, last
	}

	local := math.Mod(t, cycle)
	from := tl.From
	cursor := 0.0
	for i, s := range tl.Steps {
		start := cursor + s.Delay
		end := start + s.Duration
		if local < start {
			return from, i
		}
		if local < end {
			p := (local - start) / s.Duration
			ease := s.Ease
			if ease == nil {
				ease = Linear
			}
			return from + (s.To-from)*ease(p), i
		}
		from = s.To
		cursor = end
	}
	last := len(tl.Steps) - 1
	return tl.Steps[last].To, last
}
