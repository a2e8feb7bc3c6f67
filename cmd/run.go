package main

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/faculty-cli/internal/export"
	"github.com/sells-group/faculty-cli/internal/fetch"
	"github.com/sells-group/faculty-cli/internal/pipeline"
	"github.com/sells-group/faculty-cli/internal/site"
)

var (
	runSites      []string
	runSkipEnrich bool
	runNoBrowser  bool
	runOutputDir  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full scraping pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("run"); err != nil {
			return err
		}

		outputDir := runOutputDir
		if outputDir == "" {
			outputDir = cfg.Output.Dir
		}
		jsonPath := filepath.Join(outputDir, "faculty_data.json")
		csvPath := filepath.Join(outputDir, "faculty_data.csv")

		// Seed from a previous run so re-runs are additive.
		seed, err := export.ReadJSON(jsonPath)
		if err != nil {
			return err
		}
		if len(seed) > 0 {
			zap.L().Info("seeded existing records", zap.Int("count", len(seed)))
		}

		static := newStaticFetcher()
		var closeCache func()
		if cfg.Cache.Enabled {
			cache, err := fetch.OpenCache(filepath.Join(outputDir, cfg.Cache.Path), cfg.Cache.TTL())
			if err != nil {
				zap.L().Warn("page cache unavailable, fetching uncached", zap.Error(err))
			} else {
				static = fetch.NewCachingFetcher(static, cache)
				closeCache = func() { _ = cache.Close() }
			}
		}
		if closeCache != nil {
			defer closeCache()
		}

		var browser fetch.Fetcher
		if !runNoBrowser {
			bf := fetch.NewBrowserFetcher(fetch.BrowserOptions{
				SettleDelay:     time.Duration(cfg.Browser.SettleDelaySecs) * time.Second,
				SelectorTimeout: time.Duration(cfg.Browser.SelectorTimeoutSecs) * time.Second,
			})
			defer bf.Close()
			browser = bf
		}

		p := pipeline.New(static, browser, site.Default(static), pipeline.Options{
			Sites:      runSites,
			SkipEnrich: runSkipEnrich,
			NoBrowser:  runNoBrowser,
			Seed:       seed,
		})

		result, err := p.Run(ctx)
		if err != nil {
			return err
		}

		if err := export.WriteJSON(jsonPath, result.Records); err != nil {
			return err
		}
		if err := export.WriteCSV(csvPath, result.Records); err != nil {
			return err
		}

		zap.L().Info("output written",
			zap.String("json", jsonPath),
			zap.String("csv", csvPath),
			zap.Int("records", len(result.Records)))
		return nil
	},
}

// newStaticFetcher builds the HTTP fetcher from config.
func newStaticFetcher() fetch.Fetcher {
	return fetch.NewHTTPFetcher(fetch.HTTPOptions{
		Timeout:           time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		MinDelay:          time.Duration(cfg.Fetch.MinDelaySecs * float64(time.Second)),
		MaxDelay:          time.Duration(cfg.Fetch.MaxDelaySecs * float64(time.Second)),
		RequestsPerSecond: cfg.Fetch.RequestsPerSecond,
	})
}

func init() {
	runCmd.Flags().StringSliceVar(&runSites, "sites", nil, "restrict the crawl to these site keys (default all)")
	runCmd.Flags().BoolVar(&runSkipEnrich, "skip-enrich", false, "stop after the listing stage")
	runCmd.Flags().BoolVar(&runNoBrowser, "no-browser", false, "skip sites that need the headless browser")
	runCmd.Flags().StringVar(&runOutputDir, "output-dir", "", "output directory (default from config)")
	rootCmd.AddCommand(runCmd)
}
