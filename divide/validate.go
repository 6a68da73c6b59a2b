package divide

import "slices"

// validationEpsilon absorbs floating-point error when comparing spreads
// against thresholds.
const validationEpsilon = 1e-9

// SubjectDiff reports the max-minus-min spread of one subject's per-class
// averages.
type SubjectDiff struct {
	Subject string
	Diff    float64
}

// ConstraintValidation is the post-hoc hard-constraint report for a
// finished division. It measures max-minus-min spreads, not the
// mean-deviation metric the cost function optimizes; the two are related
// but deliberately distinct.
type ConstraintValidation struct {
	ScoreConstraintMet     bool
	GenderConstraintMet    bool
	ClassSizeConstraintMet bool
	MaxScoreDiff           float64
	MaxGenderRatioDiff     float64
	MaxClassSizeDiff       int
	SubjectMaxDiffs        []SubjectDiff
}

// Validate checks a division against the default thresholds.
func Validate(classes []*Class) ConstraintValidation {
	return ValidateWithParams(classes, DefaultParams())
}

// ValidateWithParams checks a division against the given thresholds. It is
// a pure function over the output; it has no effect on the search and
// holds no reference to search state.
func ValidateWithParams(classes []*Class, params OptimizationParams) ConstraintValidation {
	if len(classes) == 0 {
		return ConstraintValidation{
			ScoreConstraintMet:     true,
			GenderConstraintMet:    true,
			ClassSizeConstraintMet: true,
		}
	}

	totalAvgs := make([]float64, len(classes))
	genderRatios := make([]float64, len(classes))
	sizes := make([]int, len(classes))
	for i, c := range classes {
		totalAvgs[i] = c.AvgTotalScore()
		genderRatios[i] = c.GenderRatio()
		sizes[i] = len(c.Students)
	}

	maxScoreDiff := spread(totalAvgs)
	maxGenderDiff := spread(genderRatios)
	maxSizeDiff := slices.Max(sizes) - slices.Min(sizes)

	var subjects []string
	for _, c := range classes {
		if len(c.Students) > 0 {
			subjects = c.Subjects()
			slices.Sort(subjects)
			break
		}
	}

	subjectDiffs := make([]SubjectDiff, 0, len(subjects))
	for _, subject := range subjects {
		avgs := make([]float64, len(classes))
		for i, c := range classes {
			avgs[i] = c.AvgSubjectScore(subject)
		}
		subjectDiffs = append(subjectDiffs, SubjectDiff{Subject: subject, Diff: spread(avgs)})
	}

	return ConstraintValidation{
		ScoreConstraintMet:     maxScoreDiff <= params.MaxScoreDiff+validationEpsilon,
		GenderConstraintMet:    maxGenderDiff <= params.MaxGenderRatioDiff+validationEpsilon,
		ClassSizeConstraintMet: maxSizeDiff <= params.MaxClassSizeDiff,
		MaxScoreDiff:           maxScoreDiff,
		MaxGenderRatioDiff:     maxGenderDiff,
		MaxClassSizeDiff:       maxSizeDiff,
		SubjectMaxDiffs:        subjectDiffs,
	}
}

// spread returns max(values) - min(values).
func spread(values []float64) float64 {
	return slices.Max(values) - slices.Min(values)
}
