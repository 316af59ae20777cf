package performance

import (
	"time"

	"github.com/sirupsen/logrus"
)

// FrameMonitor tracks how long the update and draw phases of the main loop
// take compared to the frame budget
type FrameMonitor struct {
	budget time.Duration

	updateTimes *RollingAverage
	drawTimes   *RollingAverage
	frameTimes  *RollingAverage

	lateFrames  int
	totalFrames int
	startTime   time.Time
}

// Report contains aggregated frame metrics
type Report struct {
	AvgUpdateMs float64
	AvgDrawMs   float64
	AvgFrameMs  float64
	LateRate    float64 // Percentage of frames over budget
	TotalFrames int
	LateFrames  int
	Uptime      time.Duration
}

// NewFrameMonitor creates a monitor averaging over windowSize frames
func NewFrameMonitor(budget time.Duration, windowSize int) *FrameMonitor {
	return &FrameMonitor{
		budget:      budget,
		updateTimes: NewRollingAverage(windowSize),
		drawTimes:   NewRollingAverage(windowSize),
		frameTimes:  NewRollingAverage(windowSize),
		startTime:   time.Now(),
	}
}

// RecordFrame records the phases of one loop iteration, excluding the
// pacing sleep
func (p *FrameMonitor) RecordFrame(update, draw time.Duration) {
	total := update + draw
	p.updateTimes.Add(update)
	p.drawTimes.Add(draw)
	p.frameTimes.Add(total)

	p.totalFrames++
	if total > p.budget {
		p.lateFrames++
	}
}

// Report generates a report with current metrics
func (p *FrameMonitor) Report() Report {
	lateRate := 0.0
	if p.totalFrames > 0 {
		lateRate = float64(p.lateFrames) / float64(p.totalFrames) * 100.0
	}

	return Report{
		AvgUpdateMs: float64(p.updateTimes.Average().Microseconds()) / 1000.0,
		AvgDrawMs:   float64(p.drawTimes.Average().Microseconds()) / 1000.0,
		AvgFrameMs:  float64(p.frameTimes.Average().Microseconds()) / 1000.0,
		LateRate:    lateRate,
		TotalFrames: p.totalFrames,
		LateFrames:  p.lateFrames,
		Uptime:      time.Since(p.startTime),
	}
}

// TotalFrames returns the number of frames recorded
func (p *FrameMonitor) TotalFrames() int {
	return p.totalFrames
}

// LogReport writes the current report and heap stats at debug level
func (p *FrameMonitor) LogReport(log logrus.FieldLogger) {
	r := p.Report()
	mem := GetGoMemory()
	log.WithFields(logrus.Fields{
		"frames":    r.TotalFrames,
		"late":      r.LateFrames,
		"late_pct":  r.LateRate,
		"update_ms": r.AvgUpdateMs,
		"draw_ms":   r.AvgDrawMs,
		"frame_ms":  r.AvgFrameMs,
		"heap_mb":   mem.AllocMB,
		"gc":        mem.NumGC,
	}).Debug("frame report")
}

// ReportEvery logs a report and starts a new measuring window once interval
// frames have been recorded. It reports whether it logged. A non-positive
// interval disables reporting.
func (p *FrameMonitor) ReportEvery(log logrus.FieldLogger, interval int) bool {
	if interval <= 0 || p.totalFrames < interval {
		return false
	}
	p.LogReport(log)
	p.Reset()
	return true
}

// Reset clears all metrics
func (p *FrameMonitor) Reset() {
	p.updateTimes.Reset()
	p.drawTimes.Reset()
	p.frameTimes.Reset()
	p.lateFrames = 0
	p.totalFrames = 0
	p.startTime = time.Now()
}
