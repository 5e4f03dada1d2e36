package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/topogame/TalentFlow-sub001/internal/matching"
)

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"choices":[{"message":{"content":%q}}]}`, content)
	}))
}

func testBatch() []CandidateBrief {
	return []CandidateBrief{
		{ID: uuid.New(), Name: "Ayse Demir"},
		{ID: uuid.New(), Name: "Mehmet Kaya"},
	}
}

func evaluationJSON(id uuid.UUID, skills, language, sector float64) string {
	return fmt.Sprintf(`{"candidate_id":"%s","skills":{"score":%g,"explanation":"s"},"language":{"score":%g,"explanation":"l"},"sector":{"score":%g,"explanation":"c"}}`,
		id, skills, language, sector)
}

func TestEvaluateBatch_Success(t *testing.T) {
	batch := testBatch()
	content := "[" + evaluationJSON(batch[0].ID, 80, 70, 60) + "," + evaluationJSON(batch[1].ID, 40, 50, 30) + "]"
	srv := chatServer(t, content)
	defer srv.Close()

	client := NewClient(srv.URL, "test-model")
	scores, err := client.EvaluateBatch(context.Background(), PositionProfile{Title: "Backend Engineer"}, batch)
	assert.NoError(t, err)
	assert.Len(t, scores, 2)
	assert.Equal(t, 80.0, scores[batch[0].ID].Skills.Value)
	assert.Equal(t, 50.0, scores[batch[1].ID].Language.Value)
}

func TestEvaluateBatch_MarkdownFencedResponse(t *testing.T) {
	batch := testBatch()[:1]
	content := "Here are the scores:\n```json\n[" + evaluationJSON(batch[0].ID, 75, 65, 55) + "]\n```"
	srv := chatServer(t, content)
	defer srv.Close()

	client := NewClient(srv.URL, "test-model")
	scores, err := client.EvaluateBatch(context.Background(), PositionProfile{Title: "Backend Engineer"}, batch)
	assert.NoError(t, err)
	assert.Equal(t, 75.0, scores[batch[0].ID].Skills.Value)
}

func TestEvaluateBatch_ClampsOutOfRangeScores(t *testing.T) {
	batch := testBatch()[:1]
	content := "[" + evaluationJSON(batch[0].ID, 150, -20, 50) + "]"
	srv := chatServer(t, content)
	defer srv.Close()

	client := NewClient(srv.URL, "test-model")
	scores, err := client.EvaluateBatch(context.Background(), PositionProfile{Title: "Backend Engineer"}, batch)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, scores[batch[0].ID].Skills.Value)
	assert.Equal(t, 0.0, scores[batch[0].ID].Language.Value)
}

func TestEvaluateBatch_IgnoresUnknownCandidates(t *testing.T) {
	batch := testBatch()[:1]
	content := "[" + evaluationJSON(batch[0].ID, 70, 70, 70) + "," + evaluationJSON(uuid.New(), 99, 99, 99) + "]"
	srv := chatServer(t, content)
	defer srv.Close()

	client := NewClient(srv.URL, "test-model")
	scores, err := client.EvaluateBatch(context.Background(), PositionProfile{Title: "Backend Engineer"}, batch)
	assert.NoError(t, err)
	assert.Len(t, scores, 1)
}

func TestEvaluateBatch_PartialCoverage(t *testing.T) {
	batch := testBatch()
	content := "[" + evaluationJSON(batch[0].ID, 70, 70, 70) + "]"
	srv := chatServer(t, content)
	defer srv.Close()

	client := NewClient(srv.URL, "test-model")
	scores, err := client.EvaluateBatch(context.Background(), PositionProfile{Title: "Backend Engineer"}, batch)
	assert.NoError(t, err)
	assert.Len(t, scores, 1)
	_, covered := scores[batch[0].ID]
	assert.True(t, covered)
	_, missing := scores[batch[1].ID]
	assert.False(t, missing)
}

func TestEvaluateBatch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-model")
	_, err := client.EvaluateBatch(context.Background(), PositionProfile{Title: "Backend Engineer"}, testBatch())
	assert.Error(t, err)
}

func TestEvaluateBatch_NonJSONResponse(t *testing.T) {
	srv := chatServer(t, "I cannot evaluate these candidates.")
	defer srv.Close()

	client := NewClient(srv.URL, "test-model")
	_, err := client.EvaluateBatch(context.Background(), PositionProfile{Title: "Backend Engineer"}, testBatch())
	assert.Error(t, err)
}

func TestEvaluateBatch_EmptyBatch(t *testing.T) {
	client := NewClient("http://unused", "test-model")
	scores, err := client.EvaluateBatch(context.Background(), PositionProfile{Title: "Backend Engineer"}, nil)
	assert.NoError(t, err)
	assert.Empty(t, scores)
}

func TestSanitize_EmptyExplanation(t *testing.T) {
	s := sanitize(evaluationScore{Score: 60})
	assert.Equal(t, matching.Score{Value: 60, Explanation: "no explanation provided"}, s)
}
