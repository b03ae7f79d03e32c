// ABOUTME: Text canvas rendering plot regions as terminal panes
// ABOUTME: Draws heatmaps and line plots with block characters and lipgloss
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	shadeRamp = []rune(" ░▒▓█")
	barChars  = []rune(" ▁▂▃▄▅▆▇█")

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// TextCanvas renders plot regions into a terminal frame string. Each Flush
// hands the assembled frame to the sink, typically a bubbletea message send.
type TextCanvas struct {
	Width      int // inner pane width in cells
	PlotHeight int // rows per pane body
	sink       func(frame string)
	panes      []string
}

// NewTextCanvas creates a text canvas delivering frames to sink.
func NewTextCanvas(width, plotHeight int, sink func(frame string)) *TextCanvas {
	if width < 20 {
		width = 20
	}
	if plotHeight < 3 {
		plotHeight = 3
	}
	return &TextCanvas{Width: width, PlotHeight: plotHeight, sink: sink}
}

// Clear drops all buffered panes.
func (c *TextCanvas) Clear() {
	c.panes = nil
}

// Heatmap renders a grid region as a shaded block pane.
func (c *TextCanvas) Heatmap(p HeatmapPlot) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title))
	b.WriteByte('\n')

	cols := c.Width
	rows := c.PlotHeight
	span := p.Max - p.Min

	for row := 0; row < rows; row++ {
		// Highest frequency on the top row.
		binFrac := float64(rows-1-row) / float64(rows)
		for col := 0; col < cols; col++ {
			frameFrac := float64(col) / float64(cols)
			v, ok := heatmapSample(p.Values, frameFrac, binFrac)
			if !ok || span <= 0 {
				b.WriteRune(shadeRamp[0])
				continue
			}
			level := (v - p.Min) / span
			b.WriteRune(shadeAt(level))
		}
		b.WriteByte('\n')
	}

	legend := fmt.Sprintf("%s  %s: %s %.0f..%.0f  %s / %s",
		axisSpan(p.XS), p.LegendLabel, string(shadeRamp), p.Min, p.Max, p.XLabel, p.YLabel)
	b.WriteString(labelStyle.Render(legend))

	c.panes = append(c.panes, paneStyle.Width(c.Width+2).Render(b.String()))
}

// Line renders a line region as a column chart pane.
func (c *TextCanvas) Line(p LinePlot) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title))
	b.WriteByte('\n')

	yMin, yMax := p.YMin, p.YMax
	if yMin == 0 && yMax == 0 {
		yMin, yMax = dataRange(p.YS)
	}
	span := yMax - yMin
	rows := c.PlotHeight
	cols := c.Width

	levels := make([]float64, cols)
	filled := make([]bool, cols)
	for i, y := range p.YS {
		col := 0
		if len(p.YS) > 1 {
			col = i * (cols - 1) / (len(p.YS) - 1)
		}
		if span > 0 {
			levels[col] = (y - yMin) / span * float64(rows)
		} else {
			levels[col] = float64(rows) / 2
		}
		filled[col] = true
	}

	for row := 0; row < rows; row++ {
		rowFromBottom := float64(rows - 1 - row)
		for col := 0; col < cols; col++ {
			if !filled[col] {
				b.WriteRune(barChars[0])
				continue
			}
			b.WriteRune(barAt(levels[col], rowFromBottom))
		}
		b.WriteByte('\n')
	}

	var footer string
	if len(p.YS) == 0 {
		footer = fmt.Sprintf("(empty)  %s / %s", p.XLabel, p.YLabel)
	} else {
		footer = fmt.Sprintf("%s  y: %.1f..%.1f  %s / %s",
			axisSpan(p.XS), yMin, yMax, p.XLabel, p.YLabel)
	}
	b.WriteString(labelStyle.Render(footer))

	c.panes = append(c.panes, paneStyle.Width(c.Width+2).Render(b.String()))
}

// Flush assembles the stacked panes into one frame and delivers it.
func (c *TextCanvas) Flush() {
	if c.sink != nil {
		c.sink(strings.Join(c.panes, "\n"))
	}
}

// heatmapSample picks the grid cell for fractional frame/bin coordinates.
func heatmapSample(values [][]float64, frameFrac, binFrac float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	fi := int(frameFrac * float64(len(values)))
	if fi >= len(values) {
		fi = len(values) - 1
	}
	row := values[fi]
	if len(row) == 0 {
		return 0, false
	}
	bi := int(binFrac * float64(len(row)))
	if bi >= len(row) {
		bi = len(row) - 1
	}
	return row[bi], true
}

func shadeAt(level float64) rune {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	idx := int(level * float64(len(shadeRamp)-1))
	return shadeRamp[idx]
}

func barAt(level, rowFromBottom float64) rune {
	switch {
	case level > rowFromBottom+1:
		return barChars[len(barChars)-1]
	case level > rowFromBottom:
		frac := level - rowFromBottom
		return barChars[int(frac*float64(len(barChars)-1))]
	default:
		return barChars[0]
	}
}

func dataRange(ys []float64) (float64, float64) {
	if len(ys) == 0 {
		return 0, 1
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}

func axisSpan(xs []float64) string {
	if len(xs) == 0 {
		return "t: -"
	}
	return fmt.Sprintf("t: %.2f..%.2fs", xs[0], xs[len(xs)-1])
}
