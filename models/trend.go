package models

// TrendResult is the outcome of cleaning one metric series and fitting
// a linear trend to it. Slope and NRMSE are nil when the fit was
// skipped (fewer than two valid points, or a constant series).
type TrendResult struct {
	// Series is the cleaned series, oldest-first, after outlier
	// trimming and median null-fill, truncated to whole counts.
	Series []int64 `json:"series" yaml:"series"`
	// Slope is the first-degree least-squares slope per sample index.
	Slope *float64 `json:"slope,omitempty" yaml:"slope,omitempty"`
	// NRMSE is the root-mean-squared fit residual divided by the
	// series' value range.
	NRMSE *float64 `json:"nrmse,omitempty" yaml:"nrmse,omitempty"`
	// Fitted holds the trend line evaluated at each sample index,
	// same length as Series; nil when the fit was skipped.
	Fitted []float64 `json:"fitted,omitempty" yaml:"fitted,omitempty"`
}
