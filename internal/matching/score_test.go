package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/topogame/TalentFlow-sub001/internal/models"
)

func fp(v float64) *float64 { return &v }
func sp(v string) *string   { return &v }

func TestScoreExperience_NoRequirement(t *testing.T) {
	s := ScoreExperience(fp(2), nil)
	assert.Equal(t, 100.0, s.Value)

	s = ScoreExperience(nil, nil)
	assert.Equal(t, 100.0, s.Value)
}

func TestScoreExperience_MissingCandidateData(t *testing.T) {
	s := ScoreExperience(nil, fp(5))
	assert.Equal(t, NeutralScore, s.Value)
}

func TestScoreExperience_MeetsMinimum(t *testing.T) {
	s := ScoreExperience(fp(5), fp(5))
	assert.Equal(t, 100.0, s.Value)

	s = ScoreExperience(fp(7), fp(5))
	assert.Equal(t, 100.0, s.Value)
}

func TestScoreExperience_BelowMinimum(t *testing.T) {
	s := ScoreExperience(fp(2.5), fp(5))
	assert.Equal(t, 50.0, s.Value)

	// The floor keeps very junior candidates visible.
	s = ScoreExperience(fp(0.5), fp(10))
	assert.Equal(t, 30.0, s.Value)
}

func TestScoreExperience_Overqualified(t *testing.T) {
	s := ScoreExperience(fp(15), fp(5))
	assert.Equal(t, 90.0, s.Value)
	assert.Contains(t, s.Explanation, "overqualification")
}

func TestScoreSalary_WithinBand(t *testing.T) {
	s := ScoreSalary(fp(60000), sp("TRY"), fp(50000), fp(70000), sp("TRY"))
	assert.Equal(t, 100.0, s.Value)

	// Band edges are within the band.
	s = ScoreSalary(fp(50000), sp("TRY"), fp(50000), fp(70000), sp("TRY"))
	assert.Equal(t, 100.0, s.Value)
	s = ScoreSalary(fp(70000), sp("TRY"), fp(50000), fp(70000), sp("TRY"))
	assert.Equal(t, 100.0, s.Value)
}

func TestScoreSalary_AboveBandPenalizedHarderThanBelow(t *testing.T) {
	above := ScoreSalary(fp(90000), sp("TRY"), fp(50000), fp(70000), sp("TRY"))
	below := ScoreSalary(fp(30000), sp("TRY"), fp(50000), fp(70000), sp("TRY"))

	assert.InDelta(t, 42.86, above.Value, 0.01)
	assert.Equal(t, 60.0, below.Value)
	assert.Less(t, above.Value, below.Value)
}

func TestScoreSalary_FloorsHold(t *testing.T) {
	s := ScoreSalary(fp(500000), sp("TRY"), fp(50000), fp(70000), sp("TRY"))
	assert.Equal(t, 15.0, s.Value)

	s = ScoreSalary(fp(1000), sp("TRY"), fp(50000), fp(70000), sp("TRY"))
	assert.Equal(t, 25.0, s.Value)
}

func TestScoreSalary_MissingData(t *testing.T) {
	s := ScoreSalary(nil, nil, fp(50000), fp(70000), sp("TRY"))
	assert.Equal(t, NeutralScore, s.Value)

	s = ScoreSalary(fp(60000), sp("TRY"), nil, nil, nil)
	assert.Equal(t, NeutralScore, s.Value)
}

func TestScoreSalary_CurrencyMismatch(t *testing.T) {
	s := ScoreSalary(fp(60000), sp("USD"), fp(50000), fp(70000), sp("TRY"))
	assert.Equal(t, NeutralScore, s.Value)
	assert.Contains(t, s.Explanation, "currencies differ")
}

func TestScoreLocation_RemotePosition(t *testing.T) {
	s := ScoreLocation(sp("Izmir"), true, false, sp("Istanbul"), models.WorkModelRemote)
	assert.Equal(t, 100.0, s.Value)

	s = ScoreLocation(sp("Izmir"), false, false, sp("Istanbul"), models.WorkModelRemote)
	assert.Equal(t, 30.0, s.Value)
}

func TestScoreLocation_SameCity(t *testing.T) {
	s := ScoreLocation(sp("Istanbul"), false, false, sp("istanbul "), models.WorkModelOffice)
	assert.Equal(t, 100.0, s.Value)
}

func TestScoreLocation_HybridDifferentCity(t *testing.T) {
	s := ScoreLocation(sp("Ankara"), false, true, sp("Istanbul"), models.WorkModelHybrid)
	assert.Equal(t, 70.0, s.Value)

	// Hybrid without the candidate accepting it is a plain mismatch.
	s = ScoreLocation(sp("Ankara"), false, false, sp("Istanbul"), models.WorkModelHybrid)
	assert.Equal(t, 30.0, s.Value)
}

func TestScoreLocation_MissingData(t *testing.T) {
	s := ScoreLocation(nil, false, false, sp("Istanbul"), models.WorkModelOffice)
	assert.Equal(t, NeutralScore, s.Value)

	s = ScoreLocation(sp("Istanbul"), false, false, nil, models.WorkModelOffice)
	assert.Equal(t, NeutralScore, s.Value)
}

func TestScoreEducation_NoRequirement(t *testing.T) {
	s := ScoreEducation(sp(models.EducationHighSchool), nil)
	assert.Equal(t, 100.0, s.Value)
}

func TestScoreEducation_MeetsOrExceeds(t *testing.T) {
	s := ScoreEducation(sp(models.EducationBachelor), sp(models.EducationBachelor))
	assert.Equal(t, 100.0, s.Value)

	s = ScoreEducation(sp(models.EducationDoctorate), sp(models.EducationBachelor))
	assert.Equal(t, 100.0, s.Value)
}

func TestScoreEducation_BelowRequirement(t *testing.T) {
	s := ScoreEducation(sp(models.EducationBachelor), sp(models.EducationMaster))
	assert.Equal(t, 75.0, s.Value)

	s = ScoreEducation(sp(models.EducationHighSchool), sp(models.EducationMaster))
	assert.Equal(t, 30.0, s.Value)
}

func TestScoreEducation_MissingCandidateData(t *testing.T) {
	s := ScoreEducation(nil, sp(models.EducationBachelor))
	assert.Equal(t, NeutralScore, s.Value)

	s = ScoreEducation(sp("vocational"), sp(models.EducationBachelor))
	assert.Equal(t, NeutralScore, s.Value)
}

func TestAllScoresWithinBounds(t *testing.T) {
	scores := []Score{
		ScoreExperience(fp(0), fp(20)),
		ScoreExperience(fp(100), fp(1)),
		ScoreSalary(fp(1000000), sp("TRY"), fp(40000), fp(50000), sp("TRY")),
		ScoreSalary(fp(1), sp("TRY"), fp(40000), fp(50000), sp("TRY")),
		ScoreLocation(sp("A"), false, false, sp("B"), models.WorkModelOffice),
		ScoreEducation(sp(models.EducationHighSchool), sp(models.EducationDoctorate)),
	}
	for _, s := range scores {
		assert.GreaterOrEqual(t, s.Value, 0.0)
		assert.LessOrEqual(t, s.Value, 100.0)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5))
	assert.Equal(t, 100.0, Clamp(120))
	assert.Equal(t, 55.5, Clamp(55.5))
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights
	total := w.Experience + w.Salary + w.Location + w.Education + w.Skills + w.Language + w.Sector
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.InDelta(t, 0.40, w.RuleTotal(), 1e-9)
}
