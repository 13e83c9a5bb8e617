package main

// frameScheduler keeps at most one animation frame request outstanding.
type frameScheduler struct {
	request func()
	pending bool
	paused  bool
}

func (s *frameScheduler) schedule() {
	if s.pending || s.paused {
		return
	}
	s.pending = true
	s.request()
}

// onFrame must be called when the requested frame arrives.
// It reports whether the frame should be rendered.
func (s *frameScheduler) onFrame() bool {
	s.pending = false
	return !s.paused
}

func (s *frameScheduler) pause() {
	s.paused = true
}

func (s *frameScheduler) resume() {
	s.paused = false
	s.schedule()
}
