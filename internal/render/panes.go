// ABOUTME: Stateless pane builders for the three analysis views
// ABOUTME: Converts acoustic tracks into labeled plot regions
package render

import (
	"math"

	"github.com/VoiceScope/voicescope-go/internal/acoustic"
)

// DefaultDynamicRange is the spectrogram color scale span in dB.
const DefaultDynamicRange = 70.0

// SpectrogramPane converts a power grid into a dB heatmap. The color scale
// is clipped to [max dB - dynamicRange, max dB].
func SpectrogramPane(sg acoustic.Spectrogram, dynamicRange float64) HeatmapPlot {
	if dynamicRange <= 0 {
		dynamicRange = DefaultDynamicRange
	}

	maxDB := math.Inf(-1)
	values := make([][]float64, len(sg.Power))
	for i, row := range sg.Power {
		values[i] = make([]float64, len(row))
		for j, power := range row {
			db := math.Inf(-1)
			if power > 0 {
				db = 10 * math.Log10(power)
			}
			values[i][j] = db
			if db > maxDB {
				maxDB = db
			}
		}
	}
	if math.IsInf(maxDB, -1) {
		maxDB = 0
	}

	floor := maxDB - dynamicRange
	for i := range values {
		for j, db := range values[i] {
			if db < floor {
				values[i][j] = floor
			}
		}
	}

	return HeatmapPlot{
		Title:       "Spectrogram",
		XLabel:      "Time [s]",
		YLabel:      "Frequency [Hz]",
		LegendLabel: "Power (dB)",
		XS:          sg.Times,
		YS:          sg.Freqs,
		Values:      values,
		Min:         floor,
		Max:         maxDB,
	}
}

// PitchPane converts a pitch track into a line plot. Unvoiced frames are
// absent from the plotted sequence, not interpolated.
func PitchPane(pt acoustic.PitchTrack) LinePlot {
	plot := LinePlot{
		Title:  "Pitch Analysis",
		XLabel: "Time [s]",
		YLabel: "Frequency [Hz]",
	}
	for i, f := range pt.Freqs {
		if math.IsNaN(f) {
			continue
		}
		plot.XS = append(plot.XS, pt.Times[i])
		plot.YS = append(plot.YS, f)
	}
	return plot
}

// IntensityPane converts an intensity track into a line plot, filtering NaN
// samples. With zero valid samples the pane stays empty and the title says so.
func IntensityPane(it acoustic.IntensityTrack) LinePlot {
	plot := LinePlot{
		Title:  "Intensity Analysis",
		XLabel: "Time [s]",
		YLabel: "Intensity [dB]",
	}
	for i, v := range it.Values {
		if math.IsNaN(v) {
			continue
		}
		plot.XS = append(plot.XS, it.Times[i])
		plot.YS = append(plot.YS, v)
	}
	if len(plot.YS) == 0 {
		plot.Title = "Intensity Analysis (no valid data)"
	}
	return plot
}

// DrawFrame draws one tick's three panes onto the canvas in fixed order:
// spectrogram on top, pitch in the middle, intensity at the bottom.
func DrawFrame(c Canvas, sg acoustic.Spectrogram, pt acoustic.PitchTrack, it acoustic.IntensityTrack, dynamicRange float64) {
	c.Clear()
	c.Heatmap(SpectrogramPane(sg, dynamicRange))
	c.Line(PitchPane(pt))
	c.Line(IntensityPane(it))
	c.Flush()
}
