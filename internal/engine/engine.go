// Package engine provides the high-level orchestration for resume analysis.
// It runs the deterministic pipeline and AI enrichment in parallel and merges
// both into the result envelope.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/careeriq/engine/internal/analyze"
	"github.com/careeriq/engine/internal/compose"
	"github.com/careeriq/engine/internal/enrich"
	"github.com/careeriq/engine/internal/extract"
	"github.com/careeriq/engine/internal/ingest"
	"github.com/careeriq/engine/internal/llm"
	"github.com/careeriq/engine/internal/match"
	"github.com/careeriq/engine/internal/profile"
	"github.com/careeriq/engine/internal/roadmap"
	"github.com/careeriq/engine/internal/store"
	"github.com/careeriq/engine/internal/suggest"
	"github.com/careeriq/engine/internal/vocab"
)

// InputError reports a request that cannot be analyzed at all. Malformed but
// partially usable input is handled further down the pipeline instead.
type InputError struct {
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Message, e.Cause)
	}
	return "invalid input: " + e.Message
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// Options holds configuration for building an Engine.
type Options struct {
	Vocabulary    *vocab.Vocabulary // Required: controlled skill vocabulary
	LLM           llm.Client        // Optional: nil disables AI enrichment
	Store         *store.Store      // Optional: nil disables persistence
	EnrichTimeout time.Duration     // Per-section enrichment timeout; zero uses the default
	Verbose       bool              // Print detailed progress information
}

// Request is a single resume-versus-job analysis request.
type Request struct {
	ResumeText string
	JobText    string
	TargetRole string // Optional role hint overriding detection
}

// Analysis is a completed analysis with its persistence ID.
type Analysis struct {
	ID       uuid.UUID
	Envelope compose.Envelope
}

// Engine wires the analysis components together.
type Engine struct {
	opts      Options
	extractor *extract.Extractor
	analyzer  *analyze.Analyzer
	roadmaps  *roadmap.Builder
	enricher  *enrich.Enricher
}

// New builds an Engine. The vocabulary is the only hard requirement; the LLM
// client and store are optional capabilities.
func New(opts Options) (*Engine, error) {
	if opts.Vocabulary == nil {
		return nil, fmt.Errorf("engine requires a vocabulary")
	}
	return &Engine{
		opts:      opts,
		extractor: extract.New(opts.Vocabulary),
		analyzer:  analyze.New(),
		roadmaps:  roadmap.NewBuilder(opts.Vocabulary),
		enricher:  enrich.New(opts.LLM, opts.EnrichTimeout),
	}, nil
}

// deterministic holds the outputs of the rule-based branch.
type deterministic struct {
	resume          *profile.ResumeProfile
	job             *profile.JobRequirement
	match           match.Result
	bundle          analyze.Bundle
	recommendations suggest.Recommendations
	skillRecs       []suggest.SkillRecommendation
	suggestions     suggest.Suggestions
	roadmap         roadmap.Roadmap
}

// Analyze runs the full analysis. The deterministic branch and the enrichment
// branch run concurrently; enrichment failures degrade rather than fail the
// request.
func (e *Engine) Analyze(ctx context.Context, req Request) (*Analysis, error) {
	resumeText, err := ingest.NormalizeInput(req.ResumeText)
	if err != nil {
		return nil, &InputError{Message: "resume could not be parsed", Cause: err}
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, &InputError{Message: "resume text is empty"}
	}

	jobText, err := ingest.NormalizeInput(req.JobText)
	if err != nil {
		return nil, &InputError{Message: "job posting could not be parsed", Cause: err}
	}

	targetRole := analyze.DetectRole(jobText, req.TargetRole)

	var det deterministic
	var enrichment enrich.Result

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		det = e.runDeterministic(resumeText, jobText, req.TargetRole)
		return nil
	})
	g.Go(func() error {
		enrichment = e.enricher.Enrich(gCtx, resumeText, jobText, targetRole)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	env, err := compose.Compose(compose.Inputs{
		Match:                det.match,
		Resume:               det.resume,
		Bundle:               det.bundle,
		Recommendations:      det.recommendations,
		SkillRecommendations: det.skillRecs,
		Suggestions:          det.suggestions,
		Roadmap:              det.roadmap,
		Enrichment:           enrichment,
	})
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{ID: uuid.New(), Envelope: env}
	e.persist(ctx, analysis)
	return analysis, nil
}

func (e *Engine) runDeterministic(resumeText, jobText, roleHint string) deterministic {
	sections := profile.SectionizeText(resumeText)
	resume := profile.Normalize(sections, e.extractor)
	job := profile.NormalizeJob(jobText, roleHint, e.extractor)

	m := match.Match(resume.CanonicalSkills(), job.RequiredSkills)
	bundle := e.analyzer.Analyze(resumeText, jobText, roleHint)

	return deterministic{
		resume:          resume,
		job:             job,
		match:           m,
		bundle:          bundle,
		recommendations: suggest.Recommend(m.Score, m.Matched, m.Missing),
		skillRecs:       suggest.RecommendRelated(m.Missing, resume.CanonicalSkills(), e.opts.Vocabulary),
		suggestions:     suggest.Generate(bundle, m.Missing),
		roadmap:         e.roadmaps.Build(m.Missing, bundle.TargetRole),
	}
}

// persist stores the analysis when a store is configured. Persistence failures
// never fail the analysis.
func (e *Engine) persist(ctx context.Context, analysis *Analysis) {
	if e.opts.Store == nil {
		return
	}
	err := e.opts.Store.SaveAnalysis(ctx, analysis.ID,
		analysis.Envelope.AdvancedAnalysis.TargetRole,
		analysis.Envelope.MatchScore,
		analysis.Envelope,
	)
	if err != nil {
		fmt.Printf("Warning: Failed to save analysis: %v\n", err)
		return
	}
	if e.opts.Verbose {
		fmt.Printf("[VERBOSE] Saved analysis %s\n", analysis.ID)
	}
}
