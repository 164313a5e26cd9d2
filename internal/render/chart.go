package render

import (
	"fmt"
	"math"

	"ndmedia/internal/domain"
	"ndmedia/internal/util"
)

// Horizontal bar chart layout, in SVG user units.
const (
	chartWidth     = 640
	chartLabelCol  = 170
	chartRightPad  = 40
	chartTopPad    = 16
	chartBottomPad = 48
	chartRowHeight = 44
	chartBarHeight = 26
	chartTickCount = 5
)

// Chart is the precomputed geometry of the research bar chart.
type Chart struct {
	Width    float64
	Height   float64
	PlotLeft float64
	PlotTop  float64
	PlotBase float64
	Max      float64
	Series   string
	Bars     []Bar
	Ticks    []Tick
}

type Bar struct {
	Label      string
	ValueLabel string
	X, Y       float64
	Width      float64
	Height     float64
	LabelY     float64
	ValueX     float64
}

type Tick struct {
	X     float64
	Label string
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// BuildChart lays out one bar per datum. The axis runs from 0 to a rounded
// ceiling of the largest value.
func BuildChart(data []domain.ChartDatum, series string) Chart {
	plotWidth := float64(chartWidth - chartLabelCol - chartRightPad)
	c := Chart{
		Width:    chartWidth,
		Height:   float64(chartTopPad + chartBottomPad + chartRowHeight*len(data)),
		PlotLeft: chartLabelCol,
		PlotTop:  chartTopPad,
		Series:   series,
	}
	c.PlotBase = c.Height - chartBottomPad

	maxValue := 0.0
	for _, d := range data {
		maxValue = math.Max(maxValue, d.Value)
	}
	c.Max = util.NiceCeiling(maxValue)

	for i := 0; i <= chartTickCount; i++ {
		v := c.Max * float64(i) / chartTickCount
		c.Ticks = append(c.Ticks, Tick{
			X:     round2(c.PlotLeft + plotWidth*v/c.Max),
			Label: formatValue(v),
		})
	}

	for i, d := range data {
		w := plotWidth * util.Clamp(d.Value, 0, c.Max) / c.Max
		y := float64(chartTopPad+chartRowHeight*i) + (chartRowHeight-chartBarHeight)/2.0
		c.Bars = append(c.Bars, Bar{
			Label:      d.Name,
			ValueLabel: formatValue(d.Value),
			X:          c.PlotLeft,
			Y:          round2(y),
			Width:      round2(w),
			Height:     chartBarHeight,
			LabelY:     round2(y + chartBarHeight/2.0),
			ValueX:     round2(c.PlotLeft + w + 6),
		})
	}
	return c
}
