package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/SARIKA005/smartspend/internal/service"
)

// Generator renders aggregate figures as PNG charts.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// CategoryDonut renders the category breakdown as a donut chart. Returns
// nil bytes when there is nothing to draw.
func (g *Generator) CategoryDonut(totals []service.CategoryTotal) ([]byte, error) {
	if len(totals) == 0 {
		return nil, nil
	}

	var total float64
	for _, ct := range totals {
		total += ct.Amount
	}

	values := make([]chart.Value, 0, len(totals))
	for _, ct := range totals {
		pct := 0.0
		if total > 0 {
			pct = ct.Amount / total * 100
		}
		// Slivers under 1% just clutter the labels.
		if pct <= 1.0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: ₹%.0f (%.1f%%)", ct.Category, ct.Amount, pct),
			Value: ct.Amount,
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	donut := chart.DonutChart{
		Width:  800,
		Height: 500,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    30,
				Left:   30,
				Right:  30,
				Bottom: 30,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := donut.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render category donut: %w", err)
	}
	return buffer.Bytes(), nil
}

// MonthlyTrend renders the windowed monthly totals as a bar chart. Returns
// nil bytes when every month in the window is zero.
func (g *Generator) MonthlyTrend(points []service.MonthTotal) ([]byte, error) {
	var total float64
	for _, p := range points {
		total += p.Amount
	}
	if total <= 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(points))
	for _, p := range points {
		label := p.Month
		if len(label) >= 7 {
			label = label[5:7] // month number only
		}
		bars = append(bars, chart.Value{Label: label, Value: p.Amount})
	}

	graph := chart.BarChart{
		Title:    "Monthly Spending Trend",
		Width:    800,
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("₹%.0f", v.(float64))
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render monthly trend: %w", err)
	}
	return buffer.Bytes(), nil
}
