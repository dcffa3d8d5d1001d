// Package enrich produces the optional AI narrative overlay for an analysis:
// an overall assessment, role-targeted prose, and resume-improvement advice.
//
// Enrichment is advisory. Every failure mode (no provider, timeout, bad
// response, recognized boilerplate) yields a section explicitly marked
// degraded rather than an error, so the structural analysis is never blocked.
package enrich

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/careeriq/engine/internal/llm"
)

// DefaultTimeout bounds each provider call.
const DefaultTimeout = 20 * time.Second

// Section is one narrative overlay, tagged Present or Degraded exactly once
// here. Consumers read the flag and never re-derive it from content.
type Section struct {
	Content  map[string]any
	Degraded bool
	Reason   string
}

// Present reports whether the section carries usable narrative content.
func (s Section) Present() bool {
	return !s.Degraded && len(s.Content) > 0
}

// Result bundles the three narrative sections.
type Result struct {
	Analysis          Section
	RoleAnalysis      Section
	ResumeImprovement Section
}

// AnyPresent reports whether at least one section survived.
func (r Result) AnyPresent() bool {
	return r.Analysis.Present() || r.RoleAnalysis.Present() || r.ResumeImprovement.Present()
}

// Enricher calls the narrative provider with per-section timeouts.
type Enricher struct {
	client  llm.Client
	timeout time.Duration
}

// New returns an Enricher. A nil client is valid and yields degraded
// sections; timeout <= 0 falls back to DefaultTimeout.
func New(client llm.Client, timeout time.Duration) *Enricher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Enricher{client: client, timeout: timeout}
}

// Enrich generates the three narrative sections. Sections are independent
// and fetched concurrently; each degrades on its own without affecting the
// others.
func (e *Enricher) Enrich(ctx context.Context, resumeText, jobText, targetRole string) Result {
	if e.client == nil {
		degraded := Section{Degraded: true, Reason: "provider not configured"}
		return Result{Analysis: degraded, RoleAnalysis: degraded, ResumeImprovement: degraded}
	}

	var result Result
	g, gctx := errgroup.WithContext(ctx)

	// The overall assessment needs the deepest cross-document reasoning; the
	// improvement advice is a short document critique and runs on the cheap
	// tier.
	g.Go(func() error {
		result.Analysis = e.section(gctx, llm.ResumeAnalysisSchema(), analysisInput(resumeText, jobText), llm.TierAdvanced)
		return nil
	})
	g.Go(func() error {
		result.RoleAnalysis = e.section(gctx, llm.RoleAnalysisSchema(), roleInput(resumeText, targetRole), llm.TierStandard)
		return nil
	})
	g.Go(func() error {
		result.ResumeImprovement = e.section(gctx, llm.ResumeImprovementSchema(), improvementInput(resumeText, jobText), llm.TierLite)
		return nil
	})

	g.Wait()
	return result
}

func (e *Enricher) section(ctx context.Context, schema llm.ExtractionSchema, input string, tier llm.ModelTier) Section {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := llm.BuildExtractionPrompt(schema, input)
	raw, err := e.client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return Section{Degraded: true, Reason: "provider call failed: " + err.Error()}
	}

	var content map[string]any
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return Section{Degraded: true, Reason: "unparseable provider response"}
	}
	if len(content) == 0 {
		return Section{Degraded: true, Reason: "empty provider response"}
	}
	if reason, boilerplate := detectBoilerplate(content); boilerplate {
		return Section{Degraded: true, Reason: reason}
	}

	return Section{Content: content}
}

// Known placeholder fragments that providers emit instead of real analysis.
// A nominally successful response containing one of these is boilerplate,
// not insight, and is suppressed downstream.
var placeholderPhrases = []string{
	"service unavailable",
	"service is unavailable",
	"review manually",
	"rule-based analysis",
	"analysis unavailable",
	"tailor your summary to match the job description",
	"use action verbs and quantify achievements",
	"list skills in order of relevance to the job",
}

func detectBoilerplate(content map[string]any) (string, bool) {
	if flag, ok := content["unavailable"].(bool); ok && flag {
		return "provider marked response unavailable", true
	}
	for _, value := range content {
		text, ok := value.(string)
		if !ok {
			continue
		}
		lower := strings.ToLower(text)
		for _, phrase := range placeholderPhrases {
			if strings.Contains(lower, phrase) {
				return "placeholder content detected", true
			}
		}
	}
	return "", false
}
