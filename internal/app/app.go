// Package app wires the scraper, pipeline, and output layers together and
// decides between live harvesting and mock data.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sbmraj03/OLX-car-cover-scraper/internal/config"
	"github.com/sbmraj03/OLX-car-cover-scraper/internal/output"
	"github.com/sbmraj03/OLX-car-cover-scraper/internal/pipeline"
	"github.com/sbmraj03/OLX-car-cover-scraper/internal/utils"
	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

// ErrInterrupted reports that the run was cut short by cancellation. The
// CLI maps it to a clean goodbye message.
var ErrInterrupted = errors.New("interrupted")

// Harvester runs the live pagination walk.
type Harvester interface {
	Run(ctx context.Context, searchURL string, maxPages int) []types.Listing
}

// Generator produces synthetic listings.
type Generator interface {
	Generate(n int) []types.Listing
}

// Options configures one run of the application.
type Options struct {
	Config   *config.ScraperConfig
	Mock     bool // skip harvesting entirely
	NoSave   bool // skip the persisted export
	Quiet    bool // suppress non-essential output
	Out      io.Writer
	Logger   utils.Logger
	Exporter *output.Manager // may be nil when NoSave is set
}

// App is the run orchestrator.
type App struct {
	opts      Options
	harvester Harvester
	generator Generator
	pipeline  *pipeline.Pipeline
}

// New assembles an App from its collaborators.
func New(opts Options, harvester Harvester, generator Generator) *App {
	return &App{
		opts:      opts,
		harvester: harvester,
		generator: generator,
		pipeline:  pipeline.New(opts.Logger),
	}
}

// Run executes one scrape-process-present cycle. The returned error is nil
// for every non-fatal outcome, including the empty-result diagnostics.
func (a *App) Run(ctx context.Context) error {
	cfg := a.opts.Config
	log := a.opts.Logger

	a.printf("Starting scrape of: %s\n", cfg.SearchURL)
	a.printf("Will scrape %d page(s)\n\n", cfg.MaxPages)

	var raw []types.Listing
	usedMock := false

	if a.opts.Mock {
		log.Info("using mock listings data (no network)")
		raw = a.generator.Generate(cfg.MockCount)
		usedMock = true
	} else {
		log.Info("starting car cover scraping")
		raw = a.harvester.Run(ctx, cfg.SearchURL, cfg.MaxPages)
		if len(raw) == 0 && ctx.Err() == nil {
			log.Warn("scraping returned no results; falling back to mock data")
			raw = a.generator.Generate(cfg.MockCount)
			usedMock = true
		}
	}

	if ctx.Err() != nil {
		return ErrInterrupted
	}

	cleaned := a.pipeline.Clean(raw)
	valid := a.pipeline.Filter(cleaned)

	if err := a.pipeline.ValidateShape(valid); err != nil {
		return fmt.Errorf("invalid data format detected: %w", err)
	}

	switch {
	case len(valid) > 0:
		return a.present(valid, usedMock)
	case len(cleaned) > 0:
		a.reportAllFiltered()
	default:
		// Unreachable while the mock fallback is active, kept for the day
		// it is not.
		fmt.Fprintln(a.opts.Out, "No listings were found even after mock fallback.")
	}

	return nil
}

// present renders the table, the summary, and the persisted export.
func (a *App) present(valid []types.Listing, usedMock bool) error {
	out := a.opts.Out

	output.RenderTable(out, valid)

	if !a.opts.Quiet {
		if summary, ok := a.pipeline.Summarize(valid); ok {
			output.RenderSummary(out, summary)
		}
	}

	if !a.opts.NoSave && a.opts.Exporter != nil {
		if err := a.opts.Exporter.Write(valid); err != nil {
			return fmt.Errorf("failed to save results: %w", err)
		}
		fmt.Fprintf(out, "Data saved to %s\n", a.opts.Exporter.File())
	}

	fmt.Fprintln(out, utils.SuccessMessage(len(valid)))
	if usedMock && !a.opts.Quiet {
		fmt.Fprintln(out, "(Displayed using generated mock data due to network/anti-scraping)")
	}

	return nil
}

func (a *App) reportAllFiltered() {
	out := a.opts.Out
	fmt.Fprintln(out, "No valid listings found after filtering")
	fmt.Fprintln(out, "This might be due to:")
	fmt.Fprintln(out, "  - No car covers currently available")
	fmt.Fprintln(out, "  - Network connectivity issues")
	fmt.Fprintln(out, "  - Changes in OLX website structure")
}

// printf writes progress chatter, suppressed in quiet mode.
func (a *App) printf(format string, args ...interface{}) {
	if !a.opts.Quiet {
		fmt.Fprintf(a.opts.Out, format, args...)
	}
}
