package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/topogame/TalentFlow-sub001/internal/ai"
	"github.com/topogame/TalentFlow-sub001/internal/matching"
	"github.com/topogame/TalentFlow-sub001/internal/models"
	"github.com/topogame/TalentFlow-sub001/internal/pkg/apperror"
)

type mockPositionRepo struct {
	mock.Mock
}

func (m *mockPositionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Position, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Position), args.Error(1)
}

type mockCandidateRepo struct {
	mock.Mock
}

func (m *mockCandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *mockCandidateRepo) ListActiveExcluding(ctx context.Context, excluded []uuid.UUID) ([]models.Candidate, error) {
	args := m.Called(ctx, excluded)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Candidate), args.Error(1)
}

type mockExclusionRepo struct {
	mock.Mock
}

func (m *mockExclusionRepo) ActiveCandidateIDsForPosition(ctx context.Context, positionID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, positionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type mockEvaluator struct {
	mock.Mock
}

func (m *mockEvaluator) EvaluateBatch(ctx context.Context, profile ai.PositionProfile, batch []ai.CandidateBrief) (map[uuid.UUID]ai.CandidateScores, error) {
	args := m.Called(ctx, profile, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]ai.CandidateScores), args.Error(1)
}

func strPtr(v string) *string   { return &v }
func f64Ptr(v float64) *float64 { return &v }

func openPosition(firmID uuid.UUID) *models.Position {
	return &models.Position{
		ID:                 uuid.New(),
		FirmID:             firmID,
		Title:              "Backend Engineer",
		Status:             models.PositionStatusOpen,
		MinExperienceYears: f64Ptr(3),
		SalaryMin:          f64Ptr(50000),
		SalaryMax:          f64Ptr(70000),
		SalaryCurrency:     strPtr("TRY"),
		City:               strPtr("Istanbul"),
		WorkModel:          models.WorkModelOffice,
	}
}

func activeCandidate(name string, years float64) models.Candidate {
	return models.Candidate{
		ID:                   uuid.New(),
		FullName:             name,
		Status:               models.CandidateStatusActive,
		TotalExperienceYears: f64Ptr(years),
		SalaryExpectation:    f64Ptr(60000),
		SalaryCurrency:       strPtr("TRY"),
		City:                 strPtr("Istanbul"),
		EducationLevel:       strPtr(models.EducationBachelor),
	}
}

func TestMatchService_PositionNotOpen(t *testing.T) {
	positions := new(mockPositionRepo)
	candidates := new(mockCandidateRepo)
	exclusions := new(mockExclusionRepo)
	svc := NewMatchService(positions, candidates, exclusions, nil, 20)
	ctx := context.Background()

	position := openPosition(uuid.New())
	position.Status = models.PositionStatusClosed
	positions.On("GetByID", ctx, position.ID).Return(position, nil)

	_, err := svc.GetMatches(ctx, position.ID)
	assert.Error(t, err)
	assert.True(t, apperror.HasReason(err, apperror.ReasonPositionClosed))
}

func TestMatchService_EmptyPoolSkipsEvaluator(t *testing.T) {
	positions := new(mockPositionRepo)
	candidates := new(mockCandidateRepo)
	exclusions := new(mockExclusionRepo)
	evaluator := new(mockEvaluator)
	svc := NewMatchService(positions, candidates, exclusions, evaluator, 20)
	ctx := context.Background()

	position := openPosition(uuid.New())
	positions.On("GetByID", ctx, position.ID).Return(position, nil)
	exclusions.On("ActiveCandidateIDsForPosition", ctx, position.ID).Return([]uuid.UUID{}, nil)
	candidates.On("ListActiveExcluding", ctx, mock.Anything).Return([]models.Candidate{}, nil)

	run, err := svc.GetMatches(ctx, position.ID)
	assert.NoError(t, err)
	assert.Empty(t, run.Candidates)
	// An empty pool is not an AI outage.
	assert.True(t, run.AIAvailable)
	evaluator.AssertNotCalled(t, "EvaluateBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchService_EvaluatorFailureDegrades(t *testing.T) {
	positions := new(mockPositionRepo)
	candidates := new(mockCandidateRepo)
	exclusions := new(mockExclusionRepo)
	evaluator := new(mockEvaluator)
	svc := NewMatchService(positions, candidates, exclusions, evaluator, 20)
	ctx := context.Background()

	position := openPosition(uuid.New())
	pool := []models.Candidate{activeCandidate("Ayse Demir", 5), activeCandidate("Mehmet Kaya", 4)}

	positions.On("GetByID", ctx, position.ID).Return(position, nil)
	exclusions.On("ActiveCandidateIDsForPosition", ctx, position.ID).Return([]uuid.UUID{}, nil)
	candidates.On("ListActiveExcluding", ctx, mock.Anything).Return(pool, nil)
	evaluator.On("EvaluateBatch", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("upstream timed out"))

	run, err := svc.GetMatches(ctx, position.ID)
	assert.NoError(t, err)
	assert.False(t, run.AIAvailable)
	assert.Len(t, run.Candidates, 2)

	for _, result := range run.Candidates {
		for _, cat := range result.Categories {
			switch cat.Category {
			case models.MatchCategorySkills, models.MatchCategoryLanguage, models.MatchCategorySector:
				assert.Equal(t, matching.NeutralScore, cat.Score)
			}
		}
	}
}

func TestMatchService_NilEvaluatorAlwaysDegraded(t *testing.T) {
	positions := new(mockPositionRepo)
	candidates := new(mockCandidateRepo)
	exclusions := new(mockExclusionRepo)
	svc := NewMatchService(positions, candidates, exclusions, nil, 20)
	ctx := context.Background()

	position := openPosition(uuid.New())
	pool := []models.Candidate{activeCandidate("Ayse Demir", 5)}

	positions.On("GetByID", ctx, position.ID).Return(position, nil)
	exclusions.On("ActiveCandidateIDsForPosition", ctx, position.ID).Return([]uuid.UUID{}, nil)
	candidates.On("ListActiveExcluding", ctx, mock.Anything).Return(pool, nil)

	run, err := svc.GetMatches(ctx, position.ID)
	assert.NoError(t, err)
	assert.False(t, run.AIAvailable)
	assert.Len(t, run.Candidates, 1)
}

func TestMatchService_ExclusionsPassedToPoolQuery(t *testing.T) {
	positions := new(mockPositionRepo)
	candidates := new(mockCandidateRepo)
	exclusions := new(mockExclusionRepo)
	svc := NewMatchService(positions, candidates, exclusions, nil, 20)
	ctx := context.Background()

	position := openPosition(uuid.New())
	busy := []uuid.UUID{uuid.New(), uuid.New()}

	positions.On("GetByID", ctx, position.ID).Return(position, nil)
	exclusions.On("ActiveCandidateIDsForPosition", ctx, position.ID).Return(busy, nil)
	candidates.On("ListActiveExcluding", ctx, busy).Return([]models.Candidate{}, nil)

	_, err := svc.GetMatches(ctx, position.ID)
	assert.NoError(t, err)
	candidates.AssertCalled(t, "ListActiveExcluding", ctx, busy)
}

func TestMatchService_BatchCapLimitsResults(t *testing.T) {
	positions := new(mockPositionRepo)
	candidates := new(mockCandidateRepo)
	exclusions := new(mockExclusionRepo)
	evaluator := new(mockEvaluator)
	svc := NewMatchService(positions, candidates, exclusions, evaluator, 3)
	ctx := context.Background()

	position := openPosition(uuid.New())
	pool := make([]models.Candidate, 0, 10)
	for i := 0; i < 10; i++ {
		pool = append(pool, activeCandidate("Candidate", float64(i)))
	}

	positions.On("GetByID", ctx, position.ID).Return(position, nil)
	exclusions.On("ActiveCandidateIDsForPosition", ctx, position.ID).Return([]uuid.UUID{}, nil)
	candidates.On("ListActiveExcluding", ctx, mock.Anything).Return(pool, nil)
	evaluator.On("EvaluateBatch", ctx, mock.Anything, mock.MatchedBy(func(batch []ai.CandidateBrief) bool {
		return len(batch) == 3
	})).Return(map[uuid.UUID]ai.CandidateScores{}, nil)

	run, err := svc.GetMatches(ctx, position.ID)
	assert.NoError(t, err)
	assert.Len(t, run.Candidates, 3)
	assert.True(t, run.AIAvailable)
}

func TestMatchService_RankingIsDescending(t *testing.T) {
	positions := new(mockPositionRepo)
	candidates := new(mockCandidateRepo)
	exclusions := new(mockExclusionRepo)
	evaluator := new(mockEvaluator)
	svc := NewMatchService(positions, candidates, exclusions, evaluator, 20)
	ctx := context.Background()

	position := openPosition(uuid.New())
	strong := activeCandidate("Strong Fit", 5)
	weak := activeCandidate("Weak Fit", 1)
	weak.SalaryExpectation = f64Ptr(120000)
	pool := []models.Candidate{weak, strong}

	scores := map[uuid.UUID]ai.CandidateScores{
		strong.ID: {
			Skills:   matching.Score{Value: 95},
			Language: matching.Score{Value: 90},
			Sector:   matching.Score{Value: 85},
		},
		weak.ID: {
			Skills:   matching.Score{Value: 20},
			Language: matching.Score{Value: 30},
			Sector:   matching.Score{Value: 25},
		},
	}

	positions.On("GetByID", ctx, position.ID).Return(position, nil)
	exclusions.On("ActiveCandidateIDsForPosition", ctx, position.ID).Return([]uuid.UUID{}, nil)
	candidates.On("ListActiveExcluding", ctx, mock.Anything).Return(pool, nil)
	evaluator.On("EvaluateBatch", ctx, mock.Anything, mock.Anything).Return(scores, nil)

	run, err := svc.GetMatches(ctx, position.ID)
	assert.NoError(t, err)
	assert.Len(t, run.Candidates, 2)
	assert.Equal(t, strong.ID, run.Candidates[0].CandidateID)
	assert.Greater(t, run.Candidates[0].OverallScore, run.Candidates[1].OverallScore)
}

func TestMatchService_PartialAICoverageFillsNeutral(t *testing.T) {
	positions := new(mockPositionRepo)
	candidates := new(mockCandidateRepo)
	exclusions := new(mockExclusionRepo)
	evaluator := new(mockEvaluator)
	svc := NewMatchService(positions, candidates, exclusions, evaluator, 20)
	ctx := context.Background()

	position := openPosition(uuid.New())
	covered := activeCandidate("Covered", 5)
	skipped := activeCandidate("Skipped", 4)
	pool := []models.Candidate{covered, skipped}

	scores := map[uuid.UUID]ai.CandidateScores{
		covered.ID: {
			Skills:   matching.Score{Value: 80},
			Language: matching.Score{Value: 80},
			Sector:   matching.Score{Value: 80},
		},
	}

	positions.On("GetByID", ctx, position.ID).Return(position, nil)
	exclusions.On("ActiveCandidateIDsForPosition", ctx, position.ID).Return([]uuid.UUID{}, nil)
	candidates.On("ListActiveExcluding", ctx, mock.Anything).Return(pool, nil)
	evaluator.On("EvaluateBatch", ctx, mock.Anything, mock.Anything).Return(scores, nil)

	run, err := svc.GetMatches(ctx, position.ID)
	assert.NoError(t, err)
	assert.True(t, run.AIAvailable)

	var skippedResult *models.CandidateMatchResult
	for i := range run.Candidates {
		if run.Candidates[i].CandidateID == skipped.ID {
			skippedResult = &run.Candidates[i]
		}
	}
	if assert.NotNil(t, skippedResult) {
		for _, cat := range skippedResult.Categories {
			if cat.Category == models.MatchCategorySkills {
				assert.Equal(t, matching.NeutralScore, cat.Score)
			}
		}
	}
}
