package enrich

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careeriq/engine/internal/llm"
)

// stubClient returns a single canned response for all prompts and records
// the tier requested for each call.
type stubClient struct {
	response string
	err      error
	delay    time.Duration

	mu    sync.Mutex
	tiers []llm.ModelTier
}

func (c *stubClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	c.mu.Lock()
	c.tiers = append(c.tiers, tier)
	c.mu.Unlock()

	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func (c *stubClient) GetModel(tier llm.ModelTier) string { return "stub-model" }
func (c *stubClient) Close() error                       { return nil }

func TestEnrich_NilClientDegradesAll(t *testing.T) {
	e := New(nil, 0)
	r := e.Enrich(context.Background(), "resume", "job", "Software Engineer")

	assert.False(t, r.AnyPresent())
	assert.True(t, r.Analysis.Degraded)
	assert.True(t, r.RoleAnalysis.Degraded)
	assert.True(t, r.ResumeImprovement.Degraded)
	assert.Equal(t, "provider not configured", r.Analysis.Reason)
}

func TestEnrich_SuccessfulSections(t *testing.T) {
	client := &stubClient{response: `{"role_fit": 8, "key_strengths": ["Python"]}`}
	e := New(client, time.Second)

	r := e.Enrich(context.Background(), "resume", "job", "Software Engineer")

	require.True(t, r.Analysis.Present())
	assert.Equal(t, float64(8), r.Analysis.Content["role_fit"])
	assert.True(t, r.RoleAnalysis.Present())
	assert.True(t, r.ResumeImprovement.Present())
	assert.True(t, r.AnyPresent())
}

func TestEnrich_UsesPerSectionTiers(t *testing.T) {
	client := &stubClient{response: `{"ok": true}`}
	e := New(client, time.Second)

	e.Enrich(context.Background(), "resume", "job", "Software Engineer")

	assert.ElementsMatch(t,
		[]llm.ModelTier{llm.TierAdvanced, llm.TierStandard, llm.TierLite},
		client.tiers)
}

func TestEnrich_ProviderErrorDegrades(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	e := New(client, time.Second)

	r := e.Enrich(context.Background(), "resume", "job", "Software Engineer")

	assert.False(t, r.AnyPresent())
	assert.True(t, r.Analysis.Degraded)
	assert.Contains(t, r.Analysis.Reason, "provider call failed")
}

func TestEnrich_TimeoutDegrades(t *testing.T) {
	client := &stubClient{response: `{"ok": true}`, delay: 200 * time.Millisecond}
	e := New(client, 20*time.Millisecond)

	r := e.Enrich(context.Background(), "resume", "job", "Software Engineer")

	assert.False(t, r.AnyPresent())
	assert.True(t, r.Analysis.Degraded)
}

func TestEnrich_UnparseableResponseDegrades(t *testing.T) {
	client := &stubClient{response: "I'm sorry, I cannot help with that."}
	e := New(client, time.Second)

	r := e.Enrich(context.Background(), "resume", "job", "Software Engineer")

	assert.True(t, r.Analysis.Degraded)
	assert.Equal(t, "unparseable provider response", r.Analysis.Reason)
}

func TestEnrich_PlaceholderContentDegrades(t *testing.T) {
	client := &stubClient{response: `{"experience_assessment": "Service unavailable, review manually."}`}
	e := New(client, time.Second)

	r := e.Enrich(context.Background(), "resume", "job", "Software Engineer")

	assert.True(t, r.Analysis.Degraded)
	assert.Equal(t, "placeholder content detected", r.Analysis.Reason)
}

func TestEnrich_UnavailableFlagDegrades(t *testing.T) {
	client := &stubClient{response: `{"parsed": false, "unavailable": true}`}
	e := New(client, time.Second)

	r := e.Enrich(context.Background(), "resume", "job", "Software Engineer")

	assert.True(t, r.Analysis.Degraded)
	assert.Equal(t, "provider marked response unavailable", r.Analysis.Reason)
}

func TestEnrich_EmptyObjectDegrades(t *testing.T) {
	client := &stubClient{response: `{}`}
	e := New(client, time.Second)

	r := e.Enrich(context.Background(), "resume", "job", "Software Engineer")

	assert.True(t, r.Analysis.Degraded)
	assert.Equal(t, "empty provider response", r.Analysis.Reason)
}

func TestSection_Present(t *testing.T) {
	assert.False(t, Section{}.Present())
	assert.False(t, Section{Degraded: true, Content: map[string]any{"a": 1}}.Present())
	assert.True(t, Section{Content: map[string]any{"a": 1}}.Present())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestTruncate_RuneBoundary(t *testing.T) {
	// "é" is two bytes; a cut inside it must back up to the rune start.
	assert.Equal(t, "h", truncate("héllo", 2))
	assert.Equal(t, "hé", truncate("héllo", 3))
	assert.Equal(t, "", truncate("日本語", 2))

	got := truncate("résumé for a naïve café rôle", 10)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 10)
}
