package anim

import (
	"time"
)

// A Driver pumps wall-clock time into a Controller at a fixed frame
// rate. The controller itself is deterministic; the driver is the only
// place real time is sampled, which keeps the engine unit-testable
// through Advance.
type Driver struct {
	ctrl      *Controller
	frameRate float64
	stop      chan struct{}
}

// NewDriver creates a driver ticking at frameRate frames per second.
// Rates of zero or less fall back to 60.
func NewDriver(ctrl *Controller, frameRate float64) *Driver {
	d := new(Driver)
	d.ctrl = ctrl
	if frameRate <= 0 {
		frameRate = 60
	}
	d.frameRate = frameRate
	d.stop = make(chan struct{})
	return d
}

// Interval returns the tick period.
func (d *Driver) Interval() time.Duration {
	return time.Duration(float64(time.Second) / d.frameRate)
}

// Run ticks the controller until Stop is called, measuring the real
// elapsed time each tick so slow frames do not slow playback down.
// Run blocks; call it from the goroutine that owns the controller.
func (d *Driver) Run() {
	ticker := time.NewTicker(d.Interval())
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			d.ctrl.Advance(now.Sub(last).Seconds())
			last = now
		case <-d.stop:
			return
		}
	}
}

// Stop terminates a running Run loop. The tick in flight completes
// before the loop exits; only the next tick is prevented.
func (d *Driver) Stop() {
	select {
	case <-d.stop:
	default:
		close(d.stop)
	}
}
