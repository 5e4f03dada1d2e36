package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/topogame/TalentFlow-sub001/internal/matching"
)

// PositionProfile is the unstructured side of a position handed to the model.
type PositionProfile struct {
	Title               string  `json:"title"`
	Department          *string `json:"department,omitempty"`
	RequiredSkills      *string `json:"required_skills,omitempty"`
	LanguageRequirement *string `json:"language_requirement,omitempty"`
	SectorPreference    *string `json:"sector_preference,omitempty"`
}

// CandidateBrief is the bounded per-candidate payload sent to the model.
type CandidateBrief struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	CurrentTitle  *string   `json:"current_title,omitempty"`
	CurrentSector *string   `json:"current_sector,omitempty"`
	Languages     []string  `json:"languages,omitempty"`
}

// CandidateScores holds the three AI-evaluated dimensions for one candidate.
type CandidateScores struct {
	Skills   matching.Score
	Language matching.Score
	Sector   matching.Score
}

const evaluatorSystemPrompt = `You are a recruitment analyst. Score each candidate against the position on three dimensions: skills, language, sector. Scores are integers from 0 to 100. Respond with ONLY a JSON array, one object per candidate:
[{"candidate_id":"<uuid>","skills":{"score":0,"explanation":""},"language":{"score":0,"explanation":""},"sector":{"score":0,"explanation":""}}]
Keep explanations to one short sentence each.`

// EvaluateBatch asks the model to score the batch. The result map may not
// cover every input candidate; callers must default-fill the gaps. Any error
// means the whole invocation failed and defaults apply to the entire batch.
func (c *Client) EvaluateBatch(ctx context.Context, profile PositionProfile, batch []CandidateBrief) (map[uuid.UUID]CandidateScores, error) {
	if len(batch) == 0 {
		return map[uuid.UUID]CandidateScores{}, nil
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("ai: marshal position profile: %w", err)
	}
	batchJSON, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("ai: marshal candidate batch: %w", err)
	}

	userPrompt := fmt.Sprintf("Position:\n%s\n\nCandidates:\n%s", profileJSON, batchJSON)

	raw, err := c.chatCompletion(ctx, []map[string]string{
		{"role": "system", "content": evaluatorSystemPrompt},
		{"role": "user", "content": userPrompt},
	}, 4096, 0.2)
	if err != nil {
		return nil, err
	}

	return parseEvaluations(raw, batch)
}

type evaluationItem struct {
	CandidateID string          `json:"candidate_id"`
	Skills      evaluationScore `json:"skills"`
	Language    evaluationScore `json:"language"`
	Sector      evaluationScore `json:"sector"`
}

type evaluationScore struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// parseEvaluations decodes and sanitizes model output. Unknown candidate IDs
// are ignored; out-of-range scores are clamped rather than rejected.
func parseEvaluations(raw string, batch []CandidateBrief) (map[uuid.UUID]CandidateScores, error) {
	arr, err := extractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var items []evaluationItem
	if err := json.Unmarshal(arr, &items); err != nil {
		return nil, fmt.Errorf("ai: decode evaluations: %w", err)
	}

	known := make(map[uuid.UUID]struct{}, len(batch))
	for _, b := range batch {
		known[b.ID] = struct{}{}
	}

	result := make(map[uuid.UUID]CandidateScores, len(items))
	for _, item := range items {
		id, err := uuid.Parse(strings.TrimSpace(item.CandidateID))
		if err != nil {
			continue
		}
		if _, ok := known[id]; !ok {
			continue
		}
		result[id] = CandidateScores{
			Skills:   sanitize(item.Skills),
			Language: sanitize(item.Language),
			Sector:   sanitize(item.Sector),
		}
	}

	return result, nil
}

func sanitize(s evaluationScore) matching.Score {
	explanation := strings.TrimSpace(s.Explanation)
	if explanation == "" {
		explanation = "no explanation provided"
	}
	return matching.Score{
		Value:       matching.Clamp(s.Score),
		Explanation: explanation,
	}
}
