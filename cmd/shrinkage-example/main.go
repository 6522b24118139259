// Command shrinkage-example fits a lasso regularization path on synthetic
// data, prints the per-lambda fits, and writes an HTML coefficient path
// chart plus a JSON snapshot of the best model.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/avelars/shrinkage"
	"github.com/avelars/shrinkage/dataset"
	"github.com/avelars/shrinkage/models"
	"github.com/avelars/shrinkage/preprocess"
	"github.com/avelars/shrinkage/stats"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/goccy/go-json"
	"github.com/pkg/profile"
)

func main() {
	numSamples := flag.Int("n", 500, "number of synthetic samples")
	noise := flag.Float64("noise", 0.1, "noise standard deviation")
	htmlOut := flag.String("html", "coefpath.html", "coefficient path chart output")
	modelOut := flag.String("model", "model.json", "best model snapshot output")
	profileCPU := flag.Bool("profile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *profileCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if err := run(*numSamples, *noise, *htmlOut, *modelOut); err != nil {
		log.Fatal(err)
	}
}

func run(n int, noise float64, htmlOut, modelOut string) error {
	rnd := rand.New(rand.NewPCG(42, 0))

	// three sinusoidal features at distinct frequencies; only the first two
	// carry signal
	x, err := dataset.NewMatrixFromCols([][]float64{
		dataset.GenerateSin(n, 1, 3.0),
		dataset.GenerateCos(n, 2, 1.5),
		dataset.GenerateSin(n, 5, 2.0),
	})
	if err != nil {
		return err
	}

	y, err := dataset.GenerateLinear(x, []float64{2.0, -0.5, 0.0}, 7.0, dataset.GenerateNoise(n, noise, rnd))
	if err != nil {
		return err
	}

	if outliers := stats.DetectOutliers(y, 0.25, 0.75, 3.0); len(outliers) > 0 {
		fmt.Printf("target has %d values outside the Tukey fences at indexes %v\n", len(outliers), outliers)
	}

	scaler := preprocess.NewStandardScaler()
	xScaled, err := scaler.FitTransform(x)
	if err != nil {
		return err
	}

	d, err := dataset.New(xScaled, y)
	if err != nil {
		return err
	}

	opt := shrinkage.NewDefaultPathOptions()
	opt.Lambdas = []float64{0.0, 0.01, 0.1, 1.0, 10.0, 100.0, 1000.0}
	opt.Penalty = models.L1
	opt.Parallelization = 4

	path, err := shrinkage.NewPath(opt)
	if err != nil {
		return err
	}
	if err := path.Fit(d); err != nil {
		return err
	}

	for _, pt := range path.Points() {
		fmt.Printf("lambda=%-8g r2=%.4f zeros=%d converged=%t coef=%v\n",
			pt.Lambda, pt.R2, pt.Zeros, pt.Converged, pt.Coef)
	}

	bestLambda, err := path.BestLambda()
	if err != nil {
		return err
	}
	fmt.Printf("best lambda: %g\n", bestLambda)

	page := components.NewPage()
	page.AddCharts(
		shrinkage.LineCoefPath("Coefficient Path", []string{"sin1", "cos2", "sin5"}, path.Points()),
		shrinkage.LineR2Path("Training R2", path.Points()),
	)
	file, err := os.Create(htmlOut)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := page.Render(file); err != nil {
		return err
	}

	snapshot, err := path.Best().Snapshot()
	if err != nil {
		return err
	}
	bytes, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(modelOut, bytes, 0o644)
}
