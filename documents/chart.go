package documents

import (
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/LarzzCode/LarGarage/services"
)

// RenderWeeklyChart draws the services-per-day bar chart as PNG.
func RenderWeeklyChart(w io.Writer, days []services.DayCount) error {
	maxCount := 1
	bars := make([]chart.Value, 0, len(days))
	for _, d := range days {
		if d.Count > maxCount {
			maxCount = d.Count
		}
		bars = append(bars, chart.Value{Value: float64(d.Count), Label: d.Label})
	}
	if len(bars) == 0 {
		return fmt.Errorf("render chart: no data")
	}

	graph := chart.BarChart{
		Title:      "Servis 7 Hari Terakhir",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      640,
		Height:     320,
		BarWidth:   50,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.Itoa(int(f))
				}
				return ""
			},
		},
		Bars: bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
