// Frame loop — the host-side driver that calls UpdatePhysics once per frame.
package engine

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// Loop drives an Engine at a fixed frame interval. The loop is the single
// logical thread the engine's concurrency contract requires; anything else
// that wants to touch the engine must do it from the frame callbacks, or
// wait for Run to return first.
type Loop struct {
	Interval time.Duration // base frame interval
	Speed    float64       // multiplier: 1.0 = real-time, 0 = paused
	Frame    uint64        // frames processed, monotonic

	running atomic.Bool // Stop is called from other goroutines

	// OnFrame receives the frame's dt in milliseconds.
	OnFrame func(dt float64)

	// OnReport fires every ReportEvery frames for periodic status output.
	OnReport    func(frame uint64)
	ReportEvery uint64
}

// NewLoop creates a loop with a 100ms frame and reporting every 600 frames.
func NewLoop() *Loop {
	return &Loop{
		Interval:    100 * time.Millisecond,
		Speed:       1.0,
		ReportEvery: 600,
	}
}

// Run starts the frame loop. Blocks until Stop is called and the in-flight
// frame completes; once Run returns, no callback fires again and the engine
// is safe to touch from the caller's goroutine.
func (l *Loop) Run() {
	l.running.Store(true)
	slog.Info("frame loop started", "interval", l.Interval, "speed", l.Speed)

	for l.running.Load() {
		if l.Speed <= 0 {
			// Paused — sleep briefly and check again.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()
		l.step()

		// Sleep for the remainder of the frame, adjusted for speed.
		elapsed := time.Since(start)
		target := time.Duration(float64(l.Interval) / l.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("frame loop stopped", "frames", l.Frame)
}

// Stop halts the loop after the current frame. Safe to call from any
// goroutine; callers that need the loop fully quiesced wait for Run to
// return.
func (l *Loop) Stop() {
	l.running.Store(false)
}

func (l *Loop) step() {
	l.Frame++

	if l.OnFrame != nil {
		l.OnFrame(float64(l.Interval.Milliseconds()) * l.Speed)
	}

	if l.ReportEvery > 0 && l.Frame%l.ReportEvery == 0 && l.OnReport != nil {
		l.OnReport(l.Frame)
	}
}

// EpochTime renders cosmic seconds as a readable age string for reports.
func EpochTime(cosmicSeconds float64) string {
	total := uint64(cosmicSeconds)
	seconds := total % 60
	totalMinutes := total / 60
	minutes := totalMinutes % 60
	totalHours := totalMinutes / 60
	hours := totalHours % 1000
	epochs := totalHours / 1000

	return fmt.Sprintf("Epoch %d, %d:%02d:%02d", epochs+1, hours, minutes, seconds)
}
