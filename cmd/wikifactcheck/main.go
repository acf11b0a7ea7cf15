package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wgomg/wikifactcheck/internal/analysis"
	"github.com/wgomg/wikifactcheck/internal/article"
	"github.com/wgomg/wikifactcheck/internal/config"
	"github.com/wgomg/wikifactcheck/internal/render"
	"github.com/wgomg/wikifactcheck/internal/scorer"
	"github.com/wgomg/wikifactcheck/internal/text"
	"github.com/wgomg/wikifactcheck/internal/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		model       string
		baseURL     string
		articlePath string
		blockTarget int
		window      bool
	)

	cmd := &cobra.Command{
		Use:           "wikifactcheck",
		Short:         "Fact-check an article against sources using an OpenAI-compatible API",
		Long:          "Scores every word of an article against source documents and prints the article with confidence-based highlighting.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			if cmd.Flags().Changed("model") {
				cfg.Scorer.Model = model
			}
			if cmd.Flags().Changed("base-url") {
				cfg.Scorer.BaseURL = baseURL
			}
			if cmd.Flags().Changed("target") {
				cfg.Analysis.BlockTarget = blockTarget
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return run(cfg, articlePath, window)
		},
	}

	cmd.Flags().StringVar(&model, "model", "gpt-4.1-nano", "model name to score with")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "base URL for the OpenAI-compatible API")
	cmd.Flags().StringVar(&articlePath, "article", "article.txt", "path to the article file")
	cmd.Flags().IntVar(&blockTarget, "target", 100, "target word count per scored block")
	cmd.Flags().BoolVar(&window, "window", false, "open the windowed display instead of printing to the terminal")

	return cmd
}

func run(cfg *config.Config, articlePath string, window bool) error {
	logger := utils.NewLogger(cfg.App.LogLevel)
	defer func() { _ = logger.Sync() }()

	logger.Infof("Environment: %s", cfg.App.Env)
	logger.Infof("Model: %s", cfg.Scorer.Model)

	articleText, err := article.LoadArticle(articlePath)
	if err != nil {
		return err
	}

	sources, err := article.LoadSources(".")
	if err != nil {
		return err
	}
	for _, src := range sources {
		logger.Infof("Loaded source: %s", src.Name)
	}

	client, err := scorer.NewClient(cfg, logger)
	if err != nil {
		return err
	}

	blocks := text.SplitBlocks(articleText, cfg.Analysis.BlockTarget)
	logger.Infof("Split article into %d block(s)", len(blocks))

	analyzer := analysis.NewAnalyzer(client, logger)
	result := analyzer.Analyze(context.Background(), blocks, sources)

	styles := render.DefaultStyles()
	high := cfg.Render.HighThreshold
	partial := cfg.Render.PartialThreshold

	if window {
		return render.RunWindow(articleText, result, styles, high, partial)
	}

	combined := analysis.Combine(result)

	fmt.Println()
	fmt.Println("Colored Article Text:")
	fmt.Println(render.Colorize(articleText, combined, styles, high, partial))
	fmt.Println()
	fmt.Println(render.Legend(styles))

	return nil
}
