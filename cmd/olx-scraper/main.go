// Command olx-scraper scrapes car cover listings from OLX search results,
// shows them as a table, and exports them to a tabular file.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sbmraj03/OLX-car-cover-scraper/internal/app"
	"github.com/sbmraj03/OLX-car-cover-scraper/internal/config"
	"github.com/sbmraj03/OLX-car-cover-scraper/internal/mock"
	"github.com/sbmraj03/OLX-car-cover-scraper/internal/output"
	"github.com/sbmraj03/OLX-car-cover-scraper/internal/scraper"
	"github.com/sbmraj03/OLX-car-cover-scraper/internal/utils"
)

// Version information (set by build flags).
var (
	version = "dev"
)

type cliOptions struct {
	url        string
	pages      int
	outputFile string
	format     string
	configFile string
	noSave     bool
	quiet      bool
	mockMode   bool
	mockCount  int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:          "olx-scraper",
		Short:        "Scrape car cover listings from OLX and display them in table format",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.url, "url", config.DefaultSearchURL, "OLX search URL to scrape")
	flags.IntVar(&opts.pages, "pages", config.DefaultMaxPages, "maximum number of pages to scrape (1-10)")
	flags.StringVar(&opts.outputFile, "output", config.DefaultOutput, "output filename")
	flags.StringVar(&opts.format, "format", config.DefaultFormat, "export format: csv, json, xlsx, sqlite")
	flags.StringVar(&opts.configFile, "config", "", "optional YAML configuration file")
	flags.BoolVar(&opts.noSave, "no-save", false, "skip saving results to a file")
	flags.BoolVar(&opts.quiet, "quiet", false, "run in quiet mode (minimal output)")
	flags.BoolVar(&opts.mockMode, "mock", false, "use mock data instead of scraping OLX")
	flags.IntVar(&opts.mockCount, "mock-count", config.DefaultMockCount, "number of mock listings to generate")

	return cmd
}

func run(cmd *cobra.Command, opts *cliOptions) error {
	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		return err
	}

	logLevel := utils.InfoLevel
	if opts.quiet {
		logLevel = utils.ErrorLevel
	}
	logger := utils.NewLoggerWithLevel(logLevel)

	if !opts.quiet {
		fmt.Fprint(cmd.OutOrStdout(), utils.Banner+"\n")
	}

	var exporter *output.Manager
	if !opts.noSave {
		exporter, err = output.NewManager(output.Format(cfg.Format), cfg.OutputFile, logger)
		if err != nil {
			return err
		}
	}

	client := scraper.NewHTTPClient(scraper.ClientConfig{
		Timeout:    cfg.RequestTimeout,
		Headers:    cfg.Headers,
		UserAgents: cfg.UserAgents,
	}, logger)
	defer client.Close()

	harvester := scraper.NewPageHarvester(cfg.Selectors, logger)
	driver := scraper.NewDriver(client, harvester, cfg.RequestDelay, logger)

	application := app.New(app.Options{
		Config:   cfg,
		Mock:     opts.mockMode,
		NoSave:   opts.noSave,
		Quiet:    opts.quiet,
		Out:      cmd.OutOrStdout(),
		Logger:   logger,
		Exporter: exporter,
	}, driver, mock.NewGenerator())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		if err == app.ErrInterrupted {
			fmt.Fprintln(cmd.OutOrStdout(), "\nScraping interrupted by user")
			fmt.Fprintln(cmd.OutOrStdout(), "Thanks for using OLX Car Cover Scraper!")
			return nil
		}
		return err
	}

	return nil
}

// buildConfig layers CLI flags over the YAML file (when given) over the
// compiled-in defaults, then validates before any network activity.
func buildConfig(cmd *cobra.Command, opts *cliOptions) (*config.ScraperConfig, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		loaded, err := config.LoadFromFile(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.SearchURL = opts.url
	}
	if flags.Changed("pages") {
		cfg.MaxPages = opts.pages
	}
	if flags.Changed("output") {
		cfg.OutputFile = opts.outputFile
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("mock-count") {
		cfg.MockCount = opts.mockCount
	}

	if err := config.ValidateSearchURL(cfg.SearchURL); err != nil {
		return nil, fmt.Errorf("invalid URL provided: %w", err)
	}
	if err := config.ValidatePageCount(cfg.MaxPages); err != nil {
		return nil, err
	}
	if !output.IsValidFormat(output.Format(cfg.Format)) {
		return nil, fmt.Errorf("invalid format %q, supported: csv, json, xlsx, sqlite", cfg.Format)
	}

	return cfg, nil
}
