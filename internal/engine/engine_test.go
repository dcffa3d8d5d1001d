package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careeriq/engine/internal/llm"
	"github.com/careeriq/engine/internal/vocab"
)

const sampleResume = `Jane Doe
jane@example.com

Education
B.S. in Computer Science, 2019
State University

Experience
Software Engineer, 2020 - 2024
Acme Corp
Built REST APIs with Python and Flask backed by PostgreSQL.

Projects
Inventory Tracker
Containerized deployment with Docker on AWS.

Skills
Python, SQL, Git, Docker`

const sampleJob = `Backend Developer

Requirements:
- Python and SQL experience
- Docker and Kubernetes
- REST API design`

type stubClient struct {
	response string
	err      error
	delay    time.Duration
}

func (s *stubClient) GenerateJSON(ctx context.Context, _ string, _ llm.ModelTier) (string, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub-model" }
func (s *stubClient) Close() error                  { return nil }

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	v, err := vocab.Load()
	require.NoError(t, err)
	opts.Vocabulary = v
	e, err := New(opts)
	require.NoError(t, err)
	return e
}

func TestNew_RequiresVocabulary(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vocabulary")
}

func TestAnalyze_EmptyResume(t *testing.T) {
	e := newTestEngine(t, Options{})

	_, err := e.Analyze(context.Background(), Request{ResumeText: "   \n\t", JobText: sampleJob})
	require.Error(t, err)

	var ie *InputError
	assert.True(t, errors.As(err, &ie))
}

func TestAnalyze_FullPipeline(t *testing.T) {
	e := newTestEngine(t, Options{})

	analysis, err := e.Analyze(context.Background(), Request{ResumeText: sampleResume, JobText: sampleJob})
	require.NoError(t, err)
	require.NotNil(t, analysis)

	env := analysis.Envelope
	assert.Contains(t, env.MatchedSkills, "Python")
	assert.Contains(t, env.MatchedSkills, "Docker")
	assert.Contains(t, env.MissingSkills, "Kubernetes")
	assert.Equal(t, len(env.MatchedSkills), env.MatchedSkillCount)
	assert.Positive(t, env.MatchScore)

	assert.Equal(t, "Backend Developer", env.AdvancedAnalysis.TargetRole)
	assert.False(t, env.AIEnabled)
	assert.Nil(t, env.AIAnalysis)

	assert.NotEmpty(t, env.LearningRoadmap.Plan30.Phases)
	assert.NotEmpty(t, env.Recommendations.Summary)
	require.NotNil(t, env.ResumeData)
	assert.NotEmpty(t, env.ResumeData.Skills)
}

func TestAnalyze_Deterministic(t *testing.T) {
	e := newTestEngine(t, Options{})
	req := Request{ResumeText: sampleResume, JobText: sampleJob}

	first, err := e.Analyze(context.Background(), req)
	require.NoError(t, err)
	second, err := e.Analyze(context.Background(), req)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first.Envelope)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second.Envelope)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))

	assert.NotEqual(t, first.ID, second.ID)
}

func TestAnalyze_HTMLJobPosting(t *testing.T) {
	e := newTestEngine(t, Options{})
	htmlJob := `<html><body><h1>Backend Developer</h1><ul><li>Python</li><li>Kubernetes</li></ul></body></html>`

	analysis, err := e.Analyze(context.Background(), Request{ResumeText: sampleResume, JobText: htmlJob})
	require.NoError(t, err)

	assert.Contains(t, analysis.Envelope.MatchedSkills, "Python")
	assert.Contains(t, analysis.Envelope.MissingSkills, "Kubernetes")
}

func TestAnalyze_RoleHintOverridesDetection(t *testing.T) {
	e := newTestEngine(t, Options{})

	analysis, err := e.Analyze(context.Background(), Request{
		ResumeText: sampleResume,
		JobText:    sampleJob,
		TargetRole: "Data Scientist",
	})
	require.NoError(t, err)

	assert.Equal(t, "Data Scientist", analysis.Envelope.AdvancedAnalysis.TargetRole)
	assert.Equal(t, "Data Scientist", analysis.Envelope.LearningRoadmap.TargetRole)
}

func TestAnalyze_EmptyJobStillSucceeds(t *testing.T) {
	e := newTestEngine(t, Options{})

	analysis, err := e.Analyze(context.Background(), Request{ResumeText: sampleResume, JobText: ""})
	require.NoError(t, err)

	assert.Equal(t, 0, analysis.Envelope.MatchScore)
	assert.Empty(t, analysis.Envelope.MissingSkills)
	assert.NotEmpty(t, analysis.Envelope.ExtraSkills)
}

func TestAnalyze_EnrichmentSuccess(t *testing.T) {
	client := &stubClient{response: `{"role_fit": 8, "key_strengths": ["Python"]}`}
	e := newTestEngine(t, Options{LLM: client})

	analysis, err := e.Analyze(context.Background(), Request{ResumeText: sampleResume, JobText: sampleJob})
	require.NoError(t, err)

	assert.True(t, analysis.Envelope.AIEnabled)
	require.NotNil(t, analysis.Envelope.AIAnalysis)
	assert.Equal(t, float64(8), analysis.Envelope.AIAnalysis["role_fit"])
}

func TestAnalyze_EnrichmentTimeoutDegrades(t *testing.T) {
	client := &stubClient{response: `{"role_fit": 8}`, delay: 200 * time.Millisecond}
	e := newTestEngine(t, Options{LLM: client, EnrichTimeout: 20 * time.Millisecond})

	analysis, err := e.Analyze(context.Background(), Request{ResumeText: sampleResume, JobText: sampleJob})
	require.NoError(t, err)

	assert.False(t, analysis.Envelope.AIEnabled)
	assert.Nil(t, analysis.Envelope.AIAnalysis)
	assert.Positive(t, analysis.Envelope.MatchScore)
}

func TestAnalyze_EnrichmentErrorDegrades(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	e := newTestEngine(t, Options{LLM: client})

	analysis, err := e.Analyze(context.Background(), Request{ResumeText: sampleResume, JobText: sampleJob})
	require.NoError(t, err)

	assert.False(t, analysis.Envelope.AIEnabled)
}
