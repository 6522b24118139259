package shrinkage

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineCoefPath generates an echart multi-line chart of coefficient values
// against the lambda grid, one series per feature. Feature labels may be nil
// in which case columns are numbered.
func LineCoefPath(title string, featureLabels []string, points []PathPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	if len(points) == 0 {
		return line
	}

	lambdas := make([]string, 0, len(points))
	for _, pt := range points {
		lambdas = append(lambdas, fmt.Sprintf("%g", pt.Lambda))
	}
	line = line.SetXAxis(lambdas)

	numCoef := len(points[0].Coef)
	for j := 0; j < numCoef; j++ {
		lineData := make([]opts.LineData, 0, len(points))
		for _, pt := range points {
			if j >= len(pt.Coef) || math.IsNaN(pt.Coef[j]) {
				continue
			}
			lineData = append(lineData, opts.LineData{Value: pt.Coef[j]})
		}

		label := fmt.Sprintf("beta_%d", j)
		if j < len(featureLabels) {
			label = featureLabels[j]
		}
		line = line.AddSeries(label, lineData)
	}

	return line
}

// LineR2Path generates an echart line chart of training R2 against the
// lambda grid.
func LineR2Path(title string, points []PathPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lambdas := make([]string, 0, len(points))
	lineData := make([]opts.LineData, 0, len(points))
	for _, pt := range points {
		lambdas = append(lambdas, fmt.Sprintf("%g", pt.Lambda))
		lineData = append(lineData, opts.LineData{Value: pt.R2})
	}

	return line.SetXAxis(lambdas).AddSeries("r2", lineData)
}
