package matching

// Weights is the blend applied across the seven match categories. The rule
// subset (experience, salary, location, education) is also used alone for the
// pre-filter ranking, normalized by RuleTotal. Keeping a single table shared
// by the pre-filter and the final score prevents the two from drifting apart.
type Weights struct {
	Experience float64
	Salary     float64
	Location   float64
	Education  float64
	Skills     float64
	Language   float64
	Sector     float64
}

// DefaultWeights sums to 1.0; the rule subset carries 0.40 of the total, the
// AI-evaluated dimensions the remaining 0.60.
var DefaultWeights = Weights{
	Experience: 0.12,
	Salary:     0.12,
	Location:   0.08,
	Education:  0.08,
	Skills:     0.30,
	Language:   0.15,
	Sector:     0.15,
}

// RuleTotal is the combined weight of the four rule-scored categories.
func (w Weights) RuleTotal() float64 {
	return w.Experience + w.Salary + w.Location + w.Education
}
