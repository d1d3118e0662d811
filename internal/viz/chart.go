package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/energycalc/internal/scenario"
)

const (
	ChartWidth  = 70
	ChartHeight = 14
)

// ExchangeChart plots potential, kinetic and total energy of a falling body
// against fall distance.
func ExchangeChart(p *scenario.Profile, width, height int) string {
	if p == nil || len(p.Total) == 0 {
		return ""
	}
	if width <= 0 {
		width = ChartWidth
	}
	if height <= 0 {
		height = ChartHeight
	}

	caption := fmt.Sprintf("energy (J) vs fall distance 0..%gm  [blue: PE  red: KE  green: total]", p.Height)
	return asciigraph.PlotMany(
		[][]float64{p.Potential, p.Kinetic, p.Total},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green),
		asciigraph.Caption(caption),
	)
}
