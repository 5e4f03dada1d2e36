package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/topogame/TalentFlow-sub001/internal/ai"
	"github.com/topogame/TalentFlow-sub001/internal/logger"
	"github.com/topogame/TalentFlow-sub001/internal/matching"
	"github.com/topogame/TalentFlow-sub001/internal/models"
	"github.com/topogame/TalentFlow-sub001/internal/pkg/apperror"
)

// PositionProvider loads positions for matching.
type PositionProvider interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Position, error)
}

// CandidateProvider loads the matchable candidate pool.
type CandidateProvider interface {
	ListActiveExcluding(ctx context.Context, excluded []uuid.UUID) ([]models.Candidate, error)
}

// ProcessExclusionProvider yields candidates already in the pipeline for a position.
type ProcessExclusionProvider interface {
	ActiveCandidateIDsForPosition(ctx context.Context, positionID uuid.UUID) ([]uuid.UUID, error)
}

// Evaluator scores the unstructured dimensions of a bounded candidate batch.
// The returned map may be partial; any error invalidates the whole invocation.
type Evaluator interface {
	EvaluateBatch(ctx context.Context, profile ai.PositionProfile, batch []ai.CandidateBrief) (map[uuid.UUID]ai.CandidateScores, error)
}

// MatchService produces the ranked candidate shortlist for a position.
// It is read-only and safe for unlimited concurrent use.
type MatchService struct {
	positions  PositionProvider
	candidates CandidateProvider
	processes  ProcessExclusionProvider
	evaluator  Evaluator
	batchLimit int
	weights    matching.Weights
}

// NewMatchService creates the orchestrator. evaluator may be nil when no AI
// endpoint is configured; matching then always runs in degraded mode.
func NewMatchService(positions PositionProvider, candidates CandidateProvider, processes ProcessExclusionProvider, evaluator Evaluator, batchLimit int) *MatchService {
	if batchLimit <= 0 {
		batchLimit = 20
	}
	return &MatchService{
		positions:  positions,
		candidates: candidates,
		processes:  processes,
		evaluator:  evaluator,
		batchLimit: batchLimit,
		weights:    matching.DefaultWeights,
	}
}

// aiUnavailableScore is substituted for every AI dimension when the evaluator
// fails or skips a candidate.
var aiUnavailableScore = matching.Score{
	Value:       matching.NeutralScore,
	Explanation: "AI analysis unavailable",
}

type ruleScored struct {
	candidate models.Candidate
	exp       matching.Score
	sal       matching.Score
	loc       matching.Score
	edu       matching.Score
	partial   float64
}

// GetMatches runs the full matching flow for a position: rule scoring over the
// eligible pool, pre-filter ranking, AI evaluation of the top batch, merge and
// final ranking. AI failure degrades the result, it never fails the call.
func (s *MatchService) GetMatches(ctx context.Context, positionID uuid.UUID) (*models.MatchRun, error) {
	position, err := s.positions.GetByID(ctx, positionID)
	if err != nil {
		return nil, err
	}
	if position.Status != models.PositionStatusOpen {
		return nil, apperror.ErrPositionClosed
	}

	excluded, err := s.processes.ActiveCandidateIDsForPosition(ctx, positionID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabase, "could not load pipeline exclusions")
	}

	pool, err := s.candidates.ListActiveExcluding(ctx, excluded)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabase, "could not load candidate pool")
	}

	// An empty pool is an empty result, not an AI failure.
	if len(pool) == 0 {
		return &models.MatchRun{
			Candidates:  []models.CandidateMatchResult{},
			AIAvailable: true,
			GeneratedAt: time.Now(),
		}, nil
	}

	scored := make([]ruleScored, 0, len(pool))
	for _, candidate := range pool {
		rs := ruleScored{
			candidate: candidate,
			exp:       matching.ScoreExperience(candidate.TotalExperienceYears, position.MinExperienceYears),
			sal:       matching.ScoreSalary(candidate.SalaryExpectation, candidate.SalaryCurrency, position.SalaryMin, position.SalaryMax, position.SalaryCurrency),
			loc:       matching.ScoreLocation(candidate.City, candidate.IsRemoteEligible, candidate.IsHybridEligible, position.City, position.WorkModel),
			edu:       matching.ScoreEducation(candidate.EducationLevel, position.EducationRequirement),
		}
		// Normalized to 0-100 so the pre-filter rank is comparable to the
		// final score scale.
		rs.partial = (s.weights.Experience*rs.exp.Value +
			s.weights.Salary*rs.sal.Value +
			s.weights.Location*rs.loc.Value +
			s.weights.Education*rs.edu.Value) / s.weights.RuleTotal()
		scored = append(scored, rs)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].partial > scored[j].partial
	})

	// Candidates beyond the batch cap are excluded from this run entirely;
	// the cap bounds AI latency and cost.
	if len(scored) > s.batchLimit {
		scored = scored[:s.batchLimit]
	}

	aiScores, aiAvailable := s.evaluateBatch(ctx, position, scored)

	results := make([]models.CandidateMatchResult, 0, len(scored))
	for _, rs := range scored {
		candScores, ok := aiScores[rs.candidate.ID]
		if !ok {
			candScores = ai.CandidateScores{
				Skills:   aiUnavailableScore,
				Language: aiUnavailableScore,
				Sector:   aiUnavailableScore,
			}
		}

		overall := s.weights.Experience*rs.exp.Value +
			s.weights.Salary*rs.sal.Value +
			s.weights.Location*rs.loc.Value +
			s.weights.Education*rs.edu.Value +
			s.weights.Skills*candScores.Skills.Value +
			s.weights.Language*candScores.Language.Value +
			s.weights.Sector*candScores.Sector.Value

		results = append(results, models.CandidateMatchResult{
			CandidateID:          rs.candidate.ID,
			FullName:             rs.candidate.FullName,
			CurrentTitle:         rs.candidate.CurrentTitle,
			City:                 rs.candidate.City,
			TotalExperienceYears: rs.candidate.TotalExperienceYears,
			OverallScore:         matching.Clamp(overall),
			Categories: []models.MatchCategoryScore{
				{Category: models.MatchCategoryExperience, Score: rs.exp.Value, Explanation: rs.exp.Explanation},
				{Category: models.MatchCategorySalary, Score: rs.sal.Value, Explanation: rs.sal.Explanation},
				{Category: models.MatchCategoryLocation, Score: rs.loc.Value, Explanation: rs.loc.Explanation},
				{Category: models.MatchCategoryEducation, Score: rs.edu.Value, Explanation: rs.edu.Explanation},
				{Category: models.MatchCategorySkills, Score: candScores.Skills.Value, Explanation: candScores.Skills.Explanation},
				{Category: models.MatchCategoryLanguage, Score: candScores.Language.Value, Explanation: candScores.Language.Explanation},
				{Category: models.MatchCategorySector, Score: candScores.Sector.Value, Explanation: candScores.Sector.Explanation},
			},
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})

	return &models.MatchRun{
		Candidates:  results,
		AIAvailable: aiAvailable,
		GeneratedAt: time.Now(),
	}, nil
}

// evaluateBatch wraps the AI boundary: it never returns an error, only a
// possibly partial score map plus the availability flag.
func (s *MatchService) evaluateBatch(ctx context.Context, position *models.Position, scored []ruleScored) (map[uuid.UUID]ai.CandidateScores, bool) {
	if s.evaluator == nil {
		return nil, false
	}

	profile := ai.PositionProfile{
		Title:               position.Title,
		Department:          position.Department,
		RequiredSkills:      position.RequiredSkills,
		LanguageRequirement: position.LanguageRequirement,
		SectorPreference:    position.SectorPreference,
	}

	batch := make([]ai.CandidateBrief, 0, len(scored))
	for _, rs := range scored {
		languages := make([]string, 0, len(rs.candidate.Languages))
		for _, l := range rs.candidate.Languages {
			languages = append(languages, fmt.Sprintf("%s (%s)", l.Language, l.Level))
		}
		batch = append(batch, ai.CandidateBrief{
			ID:            rs.candidate.ID,
			Name:          rs.candidate.FullName,
			CurrentTitle:  rs.candidate.CurrentTitle,
			CurrentSector: rs.candidate.CurrentSector,
			Languages:     languages,
		})
	}

	scores, err := s.evaluator.EvaluateBatch(ctx, profile, batch)
	if err != nil {
		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"position_id": position.ID,
				"batch_size":  len(batch),
			}).WithError(err).Warn("AI evaluation failed, falling back to neutral scores")
		}
		return nil, false
	}

	return scores, true
}
