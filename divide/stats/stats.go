// Package stats computes descriptive statistics over a finished division
// for reporting. It consumes the divide package's output and never touches
// the search.
package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/classdivide/classdivide/divide"
)

// Summary describes the distribution of per-class average total scores,
// with a per-subject breakdown.
type Summary struct {
	MeanScore    float64
	Variance     float64
	StdDev       float64
	MinScore     float64
	MaxScore     float64
	ScoreRange   float64
	SubjectStats []SubjectSummary
}

// SubjectSummary is the same distribution view for one subject's per-class
// averages.
type SubjectSummary struct {
	Subject  string
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
}

// Summarize computes a Summary for a division. An empty division yields a
// zero Summary.
func Summarize(classes []*divide.Class) Summary {
	if len(classes) == 0 {
		return Summary{}
	}

	avgs := make([]float64, len(classes))
	for i, c := range classes {
		avgs[i] = c.AvgTotalScore()
	}

	mean, variance := meanPopVariance(avgs)
	minScore := slices.Min(avgs)
	maxScore := slices.Max(avgs)

	return Summary{
		MeanScore:    mean,
		Variance:     variance,
		StdDev:       math.Sqrt(variance),
		MinScore:     minScore,
		MaxScore:     maxScore,
		ScoreRange:   maxScore - minScore,
		SubjectStats: summarizeSubjects(classes),
	}
}

func summarizeSubjects(classes []*divide.Class) []SubjectSummary {
	var subjects []string
	for _, c := range classes {
		if len(c.Students) > 0 {
			subjects = c.Subjects()
			slices.Sort(subjects)
			break
		}
	}

	out := make([]SubjectSummary, 0, len(subjects))
	for _, subject := range subjects {
		avgs := make([]float64, len(classes))
		for i, c := range classes {
			avgs[i] = c.AvgSubjectScore(subject)
		}
		mean, variance := meanPopVariance(avgs)
		out = append(out, SubjectSummary{
			Subject:  subject,
			Mean:     mean,
			Variance: variance,
			StdDev:   math.Sqrt(variance),
			Min:      slices.Min(avgs),
			Max:      slices.Max(avgs),
		})
	}
	return out
}

// meanPopVariance returns the mean and the population (divide-by-N)
// variance; stat.PopVariance matches the cost function's convention,
// unlike the sample variance stat.Variance.
func meanPopVariance(values []float64) (mean, variance float64) {
	mean = stat.Mean(values, nil)
	variance = stat.PopVariance(values, nil)
	return mean, variance
}
