// Package trend cleans a per-post metric series and fits a linear
// trend with a scale-independent error measure.
package trend

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/models"
)

// outlierSigmas is the band around the median outside which a sample
// is dropped.
const outlierSigmas = 3.0

// Clean removes statistical outliers and reconstructs missing values.
// Samples further than 3 population standard deviations from the
// median are dropped outright; NaN samples (absent metrics) are filled
// with the median so the series keeps its shape. The returned series
// holds only finite values.
func Clean(series []float64) []float64 {
	present := make([]float64, 0, len(series))
	for _, v := range series {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return nil
	}

	center := median(present)

	cleaned := make([]float64, 0, len(series))
	idx := 0
	for _, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			// Null-fill stage: absent samples take the median.
			cleaned = append(cleaned, center)
			continue
		}
		if keepSample(present, idx, center) {
			cleaned = append(cleaned, v)
		}
		// Outliers are dropped, not replaced.
		idx++
	}
	return cleaned
}

// keepSample applies the median±3σ band. The deviation is measured
// with the sample under test left out of the spread: a single extreme
// spike must not widen the band enough to keep itself.
func keepSample(present []float64, i int, center float64) bool {
	if len(present) < 3 {
		return true
	}
	rest := make([]float64, 0, len(present)-1)
	rest = append(rest, present[:i]...)
	rest = append(rest, present[i+1:]...)
	spread := stat.PopStdDev(rest, nil)
	return math.Abs(present[i]-center) <= outlierSigmas*spread
}

// Fit computes the least-squares trend of a cleaned, oldest-first
// series. With fewer than two valid points, or a constant series,
// fitting is skipped: slope and NRMSE stay nil and the valid series is
// returned unchanged.
func Fit(series []float64) models.TrendResult {
	valid := make([]float64, 0, len(series))
	for _, v := range series {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			valid = append(valid, v)
		}
	}

	result := models.TrendResult{Series: toCounts(valid)}
	if len(valid) < 2 || constant(valid) {
		return result
	}

	xs := make([]float64, len(valid))
	for i := range xs {
		xs[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(xs, valid, nil, false)

	fitted := make([]float64, len(valid))
	var residual float64
	lo, hi := valid[0], valid[0]
	for i, v := range valid {
		fitted[i] = intercept + slope*xs[i]
		diff := v - fitted[i]
		residual += diff * diff
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	meanSquared := residual / float64(len(valid))

	// Range cannot be zero past the constant-series short-circuit, but
	// the divide-by-zero guard stays.
	valueRange := hi - lo
	if valueRange == 0 {
		valueRange = 1
	}
	nrmse := math.Sqrt(meanSquared) / valueRange

	result.Slope = &slope
	result.NRMSE = &nrmse
	result.Fitted = fitted
	return result
}

// Analyze runs the full pipeline: outlier trim and null-fill, then the
// trend fit over the cleaned series.
func Analyze(series []float64) models.TrendResult {
	return Fit(Clean(series))
}

// toCounts truncates final reported values to whole counts; fractional
// remainders are cut, not rounded.
func toCounts(series []float64) []int64 {
	counts := make([]int64, len(series))
	for i, v := range series {
		counts[i] = int64(math.Trunc(v))
	}
	return counts
}

func constant(series []float64) bool {
	for _, v := range series[1:] {
		if v != series[0] {
			return false
		}
	}
	return true
}

// median of a non-empty sample, averaging the middle pair for even
// lengths.
func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
