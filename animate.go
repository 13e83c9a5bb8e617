package main

import (
	"time"

	"github.com/chewxy/math32"
)

const defaultAngleStep = 30.0

// animate advances angle by step degrees per second of elapsed time.
// The result is wrapped into (-360, 360) keeping the sign of the sum.
func animate(angle, step float32, elapsed time.Duration) float32 {
	a := angle + step*float32(elapsed.Seconds())
	return math32.Mod(a, 360)
}

type frameClock struct {
	now  func() time.Time
	last time.Time
}

func newFrameClock(now func() time.Time) *frameClock {
	if now == nil {
		now = time.Now
	}
	return &frameClock{
		now:  now,
		last: now(),
	}
}

// elapsed returns the time since the previous call, or since the clock was
// created on the first call.
func (c *frameClock) elapsed() time.Duration {
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	return d
}

type animation struct {
	clock *frameClock
	angle float32
	step  float32
}

func (a *animation) advance() float32 {
	a.angle = animate(a.angle, a.step, a.clock.elapsed())
	return a.angle
}
