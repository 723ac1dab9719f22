package ecs

import "time"

// Scheduler dispatches registered Systems against a Registry once per
// Run(dt) call (spec §4.8, §5). It is single-threaded and cooperative:
// systems execute to completion in registration order before the next
// runs, with no suspension or parallelism within a frame.
type Scheduler struct {
	r *Registry

	updateSystems []System
	fixedSystems  []System
	renderSystems []System

	fixedStep      float64
	maxFixedTicks  int
	accumulator    float64

	lastMetrics PerformanceMetrics
}

// NewScheduler creates a Scheduler driving r, using cfg's fixed-tick rate
// and spiral-of-death cap.
func NewScheduler(r *Registry, cfg Config) *Scheduler {
	hz := cfg.FixedTickHz
	if hz <= 0 {
		hz = 120
	}
	maxTicks := cfg.MaxFixedTicksPerFrame
	if maxTicks <= 0 {
		maxTicks = 8
	}
	return &Scheduler{
		r:             r,
		fixedStep:     1.0 / hz,
		maxFixedTicks: maxTicks,
	}
}

// RegisterUpdateSystem appends s to the per-frame update list.
func (s *Scheduler) RegisterUpdateSystem(sys System) { s.updateSystems = append(s.updateSystems, sys) }

// RegisterFixedUpdateSystem appends s to the fixed-tick list, driven by
// the accumulator at cfg.FixedTickHz.
func (s *Scheduler) RegisterFixedUpdateSystem(sys System) {
	s.fixedSystems = append(s.fixedSystems, sys)
}

// RegisterRenderSystem appends s to the once-per-frame render list, run
// after cleanup with read-only intent (spec §4.8: "entity list is treated
// as read-only"; Go has no const-reference equivalent, so this is a
// documented convention, not a compiler-enforced one).
func (s *Scheduler) RegisterRenderSystem(sys System) { s.renderSystems = append(s.renderSystems, sys) }

// dispatch runs one system against the live set once, following spec
// §4.8's per-system algorithm: compute component mask match, compute tag
// mask match, ForEach the survivors, then merge pending entities into the
// live set (step 5: "merge pending entities into live (update/fixed-update
// systems only)"). This is what lets an early system spawn entities that a
// later system in the same frame already sees (spec §4.8, §5).
func (s *Scheduler) dispatch(sys System, dt float64, merge bool) {
	if !sys.ShouldRun(dt) {
		return
	}
	sys.Once(dt)

	mask := sys.Tags()
	for _, e := range s.r.LiveEntities() {
		if e == nil {
			continue
		}
		if !componentsMatch(sys, e) {
			continue
		}
		if !mask.Matches(e.tags) {
			continue
		}
		sys.ForEach(s.r, e, dt)
	}

	sys.After(dt)

	if merge {
		s.r.MergePending()
	}
}

// Run advances the world by dt: fixed-update systems (0..N times,
// depending on the accumulator), then update systems, then registry
// cleanup, then render systems (spec §4.8 "top-level scheduler step").
// Pending entities merge after each fixed-update and update system's own
// dispatch, not once per frame, so a system that spawns entities hands
// them to the very next system in the same frame; render systems run
// against a fixed, already-merged live set and do not merge.
func (s *Scheduler) Run(dt float64) {
	start := time.Now()

	fixedStart := time.Now()
	s.accumulator += dt
	ticks := 0
	for s.accumulator >= s.fixedStep && ticks < s.maxFixedTicks {
		for _, sys := range s.fixedSystems {
			s.dispatch(sys, s.fixedStep, true)
		}
		s.accumulator -= s.fixedStep
		ticks++
	}
	fixedTime := time.Since(fixedStart)

	updateStart := time.Now()
	for _, sys := range s.updateSystems {
		s.dispatch(sys, dt, true)
	}
	updateTime := time.Since(updateStart)

	cleanupStart := time.Now()
	s.r.Cleanup()
	cleanupTime := time.Since(cleanupStart)

	renderStart := time.Now()
	for _, sys := range s.renderSystems {
		s.dispatch(sys, dt, false)
	}
	renderTime := time.Since(renderStart)

	s.lastMetrics = PerformanceMetrics{
		EntityCount:    s.r.EntityCount(),
		ComponentCount: s.r.store.componentCount(),
		SystemCount:    len(s.updateSystems) + len(s.fixedSystems) + len(s.renderSystems),
		FrameTime:      time.Since(start),
		FixedStepTime:  fixedTime,
		UpdateTime:     updateTime,
		RenderTime:     renderTime,
		CleanupTime:    cleanupTime,
		Timestamp:      time.Now(),
	}
}

// Metrics returns the PerformanceMetrics gathered during the last Run call.
func (s *Scheduler) Metrics() PerformanceMetrics { return s.lastMetrics }
