package sentimently

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a batch of results.
type Summary struct {
	Count    int     `json:"count" yaml:"count"`
	Total    int     `json:"total" yaml:"total"` // Sum of all scores
	Mean     float64 `json:"mean" yaml:"mean"`   // Mean comparative score
	StdDev   float64 `json:"stddev" yaml:"stddev"`
	Median   float64 `json:"median" yaml:"median"`
	Min      float64 `json:"min" yaml:"min"`
	Max      float64 `json:"max" yaml:"max"`
	Positive int     `json:"positive" yaml:"positive"`
	Neutral  int     `json:"neutral" yaml:"neutral"`
	Negative int     `json:"negative" yaml:"negative"`
}

// Summarize computes batch statistics over the comparative scores of results.
func Summarize(results []AnalysisResult) Summary {
	var sum Summary
	if len(results) == 0 {
		return sum
	}

	comparatives := make([]float64, len(results))
	for i, r := range results {
		comparatives[i] = r.Comparative
		sum.Total += r.Score
		switch r.Polarity() {
		case Positive:
			sum.Positive++
		case Negative:
			sum.Negative++
		default:
			sum.Neutral++
		}
	}

	sum.Count = len(results)
	sum.Min = floats.Min(comparatives)
	sum.Max = floats.Max(comparatives)
	if sum.Count > 1 {
		sum.Mean, sum.StdDev = stat.MeanStdDev(comparatives, nil)
	} else {
		sum.Mean = comparatives[0]
	}

	sorted := slices.Clone(comparatives)
	slices.Sort(sorted)
	sum.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return sum
}
