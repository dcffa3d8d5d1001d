package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/careeriq/engine/internal/config"
	"github.com/careeriq/engine/internal/engine"
	"github.com/careeriq/engine/internal/llm"
	"github.com/careeriq/engine/internal/observability"
	"github.com/careeriq/engine/internal/store"
	"github.com/careeriq/engine/internal/vocab"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job posting",
	Long: `Runs the full analysis: skill extraction and matching, role readiness
assessment, improvement suggestions and learning roadmaps. With a Gemini API
key the result also carries AI narrative sections; without one the analysis is
fully rule-based.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath  string
	analyzeResume      string
	analyzeJob         string
	analyzeRole        string
	analyzeOut         string
	analyzeAPIKey      string
	analyzeDatabaseURL string
	analyzeTimeout     int
	analyzeVerbose     bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting file (text or HTML)")
	analyzeCommand.Flags().StringVar(&analyzeRole, "role", "", "Target role hint (overrides role detection)")
	analyzeCommand.Flags().StringVarP(&analyzeOut, "out", "o", "", "Path to write result JSON (defaults to stdout)")
	analyzeCommand.Flags().IntVar(&analyzeTimeout, "enrich-timeout", 0, "Per-section AI enrichment timeout in seconds")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for analysis persistence
	analyzeCommand.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCommand)
}

// resolveAnalyzeConfig merges config file, environment and CLI flags. Flags
// explicitly set on the command line win over everything else.
func resolveAnalyzeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
		if analyzeVerbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("role") {
		cfg.TargetRole = analyzeRole
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = analyzeOut
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}
	if cmd.Flags().Changed("enrich-timeout") {
		cfg.EnrichTimeoutSeconds = analyzeTimeout
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	envCfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}
	cfg = cfg.MergeWithDefaults(*envCfg)

	if err := validateAnalyzeConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateAnalyzeConfig(cfg config.Config) error {
	if cfg.Resume == "" {
		return fmt.Errorf("--resume must be provided (via flag or config)")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job must be provided (via flag or config)")
	}
	return cfg.Validate()
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveAnalyzeConfig(cmd)
	if err != nil {
		return err
	}

	resumeBytes, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobBytes, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	vocabulary, err := vocab.Load()
	if err != nil {
		return fmt.Errorf("failed to load skill vocabulary: %w", err)
	}

	opts := engine.Options{
		Vocabulary:    vocabulary,
		EnrichTimeout: time.Duration(cfg.EnrichTimeoutSeconds) * time.Second,
		Verbose:       cfg.Verbose,
	}

	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, nil, cfg.APIKey)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize AI client: %v\n", err)
			fmt.Printf("Continuing with rule-based analysis only...\n")
		} else {
			defer client.Close()
			opts.LLM = client
		}
	}

	if cfg.DatabaseURL != "" {
		st, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without persistence...\n")
		} else {
			defer st.Close()
			if err := st.EnsureSchema(ctx); err != nil {
				fmt.Printf("Warning: Failed to ensure database schema: %v\n", err)
			} else {
				opts.Store = st
			}
		}
	}

	eng, err := engine.New(opts)
	if err != nil {
		return err
	}

	analysis, err := eng.Analyze(ctx, engine.Request{
		ResumeText: string(resumeBytes),
		JobText:    string(jobBytes),
		TargetRole: cfg.TargetRole,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMatchSummary(&analysis.Envelope)
		printer.PrintAdvancedAnalysis(&analysis.Envelope)
		printer.PrintRoadmap(&analysis.Envelope)
		printer.PrintEnrichmentStatus(&analysis.Envelope)
	}

	return writeResult(cfg.Out, analysis)
}

func writeResult(outPath string, analysis *engine.Analysis) error {
	data, err := json.MarshalIndent(analysis.Envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}
	fmt.Printf("Wrote analysis %s to %s\n", analysis.ID, outPath)
	return nil
}
