package matching

import (
	"fmt"
	"strings"

	"github.com/topogame/TalentFlow-sub001/internal/models"
)

// Score is the outcome of one scoring primitive: a 0-100 value plus a short
// human-readable explanation. Missing data never scores below NeutralScore;
// the recruiter context is presumptive positive, not presumptive negative.
type Score struct {
	Value       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

const (
	// NeutralScore is returned whenever a dimension cannot be judged.
	NeutralScore = 50.0

	// experienceFloor keeps under-experienced candidates visible.
	experienceFloor = 30.0
	// overqualifiedRatio is where extra experience stops adding value.
	overqualifiedRatio = 3.0
	overqualifiedScore = 90.0

	// Salary deviation slopes; expecting above the band is penalized harder
	// than expecting below it (negotiable-down candidates are preferred).
	aboveBandSlope = 200.0
	aboveBandFloor = 15.0
	belowBandSlope = 100.0
	belowBandFloor = 25.0

	hybridDifferentCityScore = 70.0
	locationMismatchScore    = 30.0

	educationStepPenalty = 25.0
	educationFloor       = 30.0
)

// ScoreExperience compares a candidate's total experience against the
// position's minimum. No floor on the position means any experience is
// acceptable; unknown candidate experience is neutral, never punitive.
func ScoreExperience(candidateYears, minRequiredYears *float64) Score {
	if minRequiredYears == nil || *minRequiredYears <= 0 {
		return Score{Value: 100, Explanation: "position sets no experience requirement"}
	}
	if candidateYears == nil {
		return Score{Value: NeutralScore, Explanation: "candidate experience is missing, scored neutrally"}
	}

	required := *minRequiredYears
	actual := *candidateYears

	if actual >= required*overqualifiedRatio {
		return Score{
			Value:       overqualifiedScore,
			Explanation: fmt.Sprintf("%.1f years is well above the required %.1f; possible overqualification", actual, required),
		}
	}
	if actual >= required {
		return Score{
			Value:       100,
			Explanation: fmt.Sprintf("%.1f years meets the required minimum of %.1f", actual, required),
		}
	}

	value := 100 * actual / required
	if value < experienceFloor {
		value = experienceFloor
	}
	return Score{
		Value:       value,
		Explanation: fmt.Sprintf("%.1f years is below the required minimum of %.1f", actual, required),
	}
}

// ScoreSalary compares the candidate's expectation against the position band.
// Different currencies are not converted; the pair is treated as
// non-comparable and scored neutrally.
func ScoreSalary(expectation *float64, candidateCurrency *string, salaryMin, salaryMax *float64, positionCurrency *string) Score {
	if expectation == nil || (salaryMin == nil && salaryMax == nil) {
		return Score{Value: NeutralScore, Explanation: "salary data is incomplete, scored neutrally"}
	}
	if candidateCurrency != nil && positionCurrency != nil &&
		!strings.EqualFold(strings.TrimSpace(*candidateCurrency), strings.TrimSpace(*positionCurrency)) {
		return Score{
			Value:       NeutralScore,
			Explanation: fmt.Sprintf("currencies differ (%s vs %s), not comparable", *candidateCurrency, *positionCurrency),
		}
	}

	exp := *expectation

	var lo float64
	if salaryMin != nil {
		lo = *salaryMin
	}

	if salaryMax != nil && exp > *salaryMax {
		hi := *salaryMax
		deviation := (exp - hi) / hi
		value := 100 - deviation*aboveBandSlope
		if value < aboveBandFloor {
			value = aboveBandFloor
		}
		return Score{
			Value:       value,
			Explanation: fmt.Sprintf("expectation %.0f exceeds the band maximum %.0f", exp, hi),
		}
	}

	if lo > 0 && exp < lo {
		deviation := (lo - exp) / lo
		value := 100 - deviation*belowBandSlope
		if value < belowBandFloor {
			value = belowBandFloor
		}
		return Score{
			Value:       value,
			Explanation: fmt.Sprintf("expectation %.0f is below the band minimum %.0f", exp, lo),
		}
	}

	return Score{Value: 100, Explanation: "expectation is within the position's salary band"}
}

// ScoreLocation treats distance as a soft signal: a mismatch lowers the score
// but never zeroes it.
func ScoreLocation(candidateCity *string, remoteEligible, hybridEligible bool, positionCity *string, workModel string) Score {
	if workModel == models.WorkModelRemote {
		if remoteEligible {
			return Score{Value: 100, Explanation: "remote position and candidate is open to remote work"}
		}
		return Score{Value: locationMismatchScore, Explanation: "remote position but candidate is not open to remote work"}
	}

	candCity := normalizeCity(candidateCity)
	posCity := normalizeCity(positionCity)
	if candCity == "" || posCity == "" {
		return Score{Value: NeutralScore, Explanation: "location data is incomplete, scored neutrally"}
	}

	if candCity == posCity {
		return Score{Value: 100, Explanation: "candidate is in the position's city"}
	}
	if workModel == models.WorkModelHybrid && hybridEligible {
		return Score{Value: hybridDifferentCityScore, Explanation: "different city but candidate accepts hybrid work"}
	}
	return Score{Value: locationMismatchScore, Explanation: "candidate is in a different city"}
}

// ScoreEducation ranks both sides on the education ladder; the candidate
// meeting or exceeding the requirement scores full, each missing rung costs a
// fixed step.
func ScoreEducation(candidateLevel, positionRequirement *string) Score {
	reqRank := educationRank(positionRequirement)
	if reqRank == 0 {
		return Score{Value: 100, Explanation: "position sets no education requirement"}
	}

	candRank := educationRank(candidateLevel)
	if candRank == 0 {
		return Score{Value: NeutralScore, Explanation: "candidate education is missing, scored neutrally"}
	}

	if candRank >= reqRank {
		return Score{Value: 100, Explanation: "candidate meets the education requirement"}
	}

	value := 100 - float64(reqRank-candRank)*educationStepPenalty
	if value < educationFloor {
		value = educationFloor
	}
	return Score{
		Value:       value,
		Explanation: fmt.Sprintf("candidate education (%s) is below the requirement (%s)", *candidateLevel, *positionRequirement),
	}
}

// Clamp bounds a score to [0,100]; used on every externally supplied value.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func normalizeCity(city *string) string {
	if city == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*city))
}

func educationRank(level *string) int {
	if level == nil {
		return 0
	}
	return models.EducationRank[strings.ToLower(strings.TrimSpace(*level))]
}
