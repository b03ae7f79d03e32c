// ABOUTME: Log-backed canvas for headless runs
// ABOUTME: Summarizes each plot region as a structured log entry
package render

import (
	"github.com/VoiceScope/voicescope-go/internal/logger"
)

// LogCanvas satisfies Canvas without a terminal surface. Used by the
// --no-tui mode; each flushed frame becomes a handful of log entries.
type LogCanvas struct {
	entries []func()
}

func NewLogCanvas() *LogCanvas {
	return &LogCanvas{}
}

func (c *LogCanvas) Clear() {
	c.entries = nil
}

func (c *LogCanvas) Heatmap(p HeatmapPlot) {
	frames, bins := len(p.Values), 0
	if frames > 0 {
		bins = len(p.Values[0])
	}
	c.entries = append(c.entries, func() {
		logger.Info("pane",
			logger.String("title", p.Title),
			logger.Int("frames", frames),
			logger.Int("bins", bins),
			logger.Float64("minDb", p.Min),
			logger.Float64("maxDb", p.Max))
	})
}

func (c *LogCanvas) Line(p LinePlot) {
	points := len(p.YS)
	c.entries = append(c.entries, func() {
		logger.Info("pane",
			logger.String("title", p.Title),
			logger.Int("points", points))
	})
}

func (c *LogCanvas) Flush() {
	for _, emit := range c.entries {
		emit()
	}
}
