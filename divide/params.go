package divide

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OptimizationParams holds every constraint threshold and cost weight used
// by the search. Values are immutable once a division starts; fields are
// exported for YAML loading and history persistence.
//
// The penalty weights are deliberately dominant (1e9–1e11) so that any
// hard-constraint violation dwarfs the variance soft terms: the annealer
// first drives violations to zero, then polishes variance.
type OptimizationParams struct {
	// Hard constraint thresholds.
	MaxScoreDiff        float64 `yaml:"max_score_diff" json:"max_score_diff"`
	MaxSubjectScoreDiff float64 `yaml:"max_subject_score_diff" json:"max_subject_score_diff"`
	MaxClassSizeDiff    int     `yaml:"max_class_size_diff" json:"max_class_size_diff"`
	MaxGenderRatioDiff  float64 `yaml:"max_gender_ratio_diff" json:"max_gender_ratio_diff"`

	// Hard constraint penalty weights.
	TotalScorePenaltyWeight   float64 `yaml:"total_score_penalty_weight" json:"total_score_penalty_weight"`
	SubjectScorePenaltyWeight float64 `yaml:"subject_score_penalty_weight" json:"subject_score_penalty_weight"`
	GenderRatioPenaltyWeight  float64 `yaml:"gender_ratio_penalty_weight" json:"gender_ratio_penalty_weight"`
	PenaltyPower              int     `yaml:"penalty_power" json:"penalty_power"`

	// Soft objective weights.
	TotalVarianceWeight   float64 `yaml:"total_variance_weight" json:"total_variance_weight"`
	GenderVarianceWeight  float64 `yaml:"gender_variance_weight" json:"gender_variance_weight"`
	SubjectVarianceWeight float64 `yaml:"subject_variance_weight" json:"subject_variance_weight"`

	// Annealing schedule.
	InitialTemperature        float64 `yaml:"initial_temperature" json:"initial_temperature"`
	CoolingRate               float64 `yaml:"cooling_rate" json:"cooling_rate"`
	NumParallelInstances      int     `yaml:"num_parallel_instances" json:"num_parallel_instances"` // 0 = derive from CPU count
	TemperatureDiversityDelta float64 `yaml:"temperature_diversity_delta" json:"temperature_diversity_delta"`

	// Move generation.
	SameGenderSwapProb float64 `yaml:"same_gender_swap_prob" json:"same_gender_swap_prob"`

	// Early stop and reheat.
	GoodSolutionThreshold   float64 `yaml:"good_solution_threshold" json:"good_solution_threshold"`
	ReheatAfterIterations   int     `yaml:"reheat_after_iterations" json:"reheat_after_iterations"`
	ReheatTemperatureFactor float64 `yaml:"reheat_temperature_factor" json:"reheat_temperature_factor"`
	ReheatMinAcceptCount    int     `yaml:"reheat_min_accept_count" json:"reheat_min_accept_count"`
}

// DefaultParams returns the standard parameter set. The gender weights sit
// far above the score weights so gender balance is satisfied first.
func DefaultParams() OptimizationParams {
	return OptimizationParams{
		MaxScoreDiff:        1.0,
		MaxSubjectScoreDiff: 1.0,
		MaxClassSizeDiff:    5,
		MaxGenderRatioDiff:  0.1,

		TotalScorePenaltyWeight:   1e9,
		SubjectScorePenaltyWeight: 1e9,
		GenderRatioPenaltyWeight:  1e11,
		PenaltyPower:              6,

		TotalVarianceWeight:   10.0,
		GenderVarianceWeight:  5000.0,
		SubjectVarianceWeight: 50.0,

		InitialTemperature:        10_000.0,
		CoolingRate:               0.99990,
		TemperatureDiversityDelta: 1_000.0,

		SameGenderSwapProb: 0.4,

		GoodSolutionThreshold:   1.0,
		ReheatAfterIterations:   1_000,
		ReheatTemperatureFactor: 0.5,
		ReheatMinAcceptCount:    100,
	}
}

// RelaxedParams loosens thresholds and cools faster. Converges sooner at
// the price of a coarser balance.
func RelaxedParams() OptimizationParams {
	p := DefaultParams()
	p.MaxScoreDiff = 2.0
	p.MaxSubjectScoreDiff = 2.0
	p.MaxGenderRatioDiff = 0.15
	p.PenaltyPower = 3
	p.InitialTemperature = 8_000.0
	p.CoolingRate = 0.9995
	return p
}

// StrictParams tightens thresholds and cools slower.
func StrictParams() OptimizationParams {
	p := DefaultParams()
	p.MaxScoreDiff = 0.5
	p.MaxSubjectScoreDiff = 0.5
	p.MaxGenderRatioDiff = 0.05
	p.PenaltyPower = 5
	p.TotalScorePenaltyWeight = 5e9
	p.SubjectScorePenaltyWeight = 5e9
	p.GenderRatioPenaltyWeight = 5e9
	p.InitialTemperature = 15_000.0
	p.CoolingRate = 0.99995
	return p
}

// AdaptiveParams scales the annealing schedule with population size; larger
// populations need a hotter, slower-cooling search to mix.
func AdaptiveParams(studentCount int) OptimizationParams {
	p := DefaultParams()
	switch {
	case studentCount > 2000:
		p.InitialTemperature *= 3.0
		p.CoolingRate = 0.99992
	case studentCount > 1000:
		p.InitialTemperature *= 2.0
		p.CoolingRate = 0.99991
	}
	return p
}

// LoadParams reads a YAML overlay from path on top of DefaultParams.
// Fields absent from the file keep their defaults.
func LoadParams(path string) (OptimizationParams, error) {
	p := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading params file: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing params file %s: %w", path, err)
	}
	return p, nil
}

// DivideConfig bundles everything one division run needs besides the
// population itself.
type DivideConfig struct {
	NumClasses    int
	MaxIterations int
	// Seed makes single-instance runs bit-for-bit reproducible. 0 seeds
	// from the wall clock (nondeterministic).
	Seed   int64
	Params OptimizationParams
}

// NewDivideConfig returns a config for numClasses classes with the default
// iteration budget and parameters.
func NewDivideConfig(numClasses int) DivideConfig {
	return DivideConfig{
		NumClasses:    numClasses,
		MaxIterations: 500_000,
		Params:        DefaultParams(),
	}
}

// WithIterations sets the iteration budget.
func (c DivideConfig) WithIterations(n int) DivideConfig {
	c.MaxIterations = n
	return c
}

// WithSeed sets the master seed.
func (c DivideConfig) WithSeed(seed int64) DivideConfig {
	c.Seed = seed
	return c
}

// WithParams replaces the optimization parameters.
func (c DivideConfig) WithParams(p OptimizationParams) DivideConfig {
	c.Params = p
	return c
}
