package main

import "time"

// fpsCounter averages the frame rate over fixed windows.
type fpsCounter struct {
	interval   time.Duration
	frameCount int
	startTime  time.Time
	fps        float64
}

// tick counts one frame at now and reports whether fps was refreshed.
func (c *fpsCounter) tick(now time.Time) bool {
	if c.interval == 0 {
		c.interval = time.Second
	}
	if c.startTime.IsZero() {
		c.startTime = now
	}
	c.frameCount++

	timeElapsed := now.Sub(c.startTime)
	if timeElapsed < c.interval {
		return false
	}
	c.fps = float64(c.frameCount) / timeElapsed.Seconds()
	c.frameCount = 0
	c.startTime = now
	return true
}
