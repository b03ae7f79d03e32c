// ABOUTME: Rendering surface contract
// ABOUTME: Defines plot regions and the Canvas interface panes draw onto
package render

// HeatmapPlot is a labeled 2-D grid region. Values is indexed [x][y] and
// already converted to the display scale; cells are clipped to [Min, Max].
type HeatmapPlot struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendLabel string
	XS          []float64
	YS          []float64
	Values      [][]float64
	Min         float64
	Max         float64
}

// LinePlot is a labeled 2-D line region. XS and YS are the same length and
// hold only defined points. YMin/YMax of zero means scale from the data.
type LinePlot struct {
	Title  string
	XLabel string
	YLabel string
	XS     []float64
	YS     []float64
	YMin   float64
	YMax   float64
}

// Canvas is the rendering surface the updater draws each tick onto.
// Implementations buffer between Clear and Flush.
type Canvas interface {
	Clear()
	Heatmap(p HeatmapPlot)
	Line(p LinePlot)
	Flush()
}
