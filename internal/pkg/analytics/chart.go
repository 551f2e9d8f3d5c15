package analytics

import (
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 960
	chartHeight = 480
)

// RenderGrowthChart 将增长曲线渲染为 PNG 折线图，每个平台一条线
func RenderGrowthChart(w io.Writer, points []GrowthPoint, platforms []string) error {
	xValues := make([]float64, len(points))
	ticks := make([]chart.Tick, len(points))
	var maxY float64
	for i, p := range points {
		xValues[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Name}
		for _, v := range p.Values {
			if float64(v) > maxY {
				maxY = float64(v)
			}
		}
	}

	series := make([]chart.Series, 0, len(platforms))
	for _, name := range platforms {
		yValues := make([]float64, len(points))
		for i, p := range points {
			yValues[i] = float64(p.Values[name])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xValues,
			YValues: yValues,
		})
	}

	// 单点或全 0 时 go-chart 无法推断坐标范围
	maxX := float64(len(points) - 1)
	if maxX < 1 {
		maxX = 1
	}
	if maxY < 1 {
		maxY = 1
	}

	graph := chart.Chart{
		Title:  "Follower Growth",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: 0, Max: maxX},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
