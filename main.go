//go:build !lambda

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	cfg        = DefaultConfig()
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "usi-optimizer",
	Short: "Find every maximal set of USI foci reachable per crew allocation",
	Long: `Searches every crew allocation, shard placement and link arrangement
of the catalog and prints, for each maximal set of fully activated areas of
focus, one configuration that reaches it with the fewest links.

Settings come from defaults, then --config (YAML), then USI_* environment
variables, then flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, &loaded)
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		zc := zap.NewProductionConfig()
		if cfg.Verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runOptimize,
}

// flag values; copied over the loaded config only when set explicitly
var flagCfg = DefaultConfig()

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.BoolVarP(&flagCfg.Verbose, "verbose", "v", false, "log search progress")
	pf.StringVar(&flagCfg.DBPath, "db", "", "SQLite file for run history")

	f := rootCmd.Flags()
	f.StringVar(&flagCfg.CatalogPath, "catalog", "", "catalog JSON file (default: embedded)")
	f.IntVar(&flagCfg.MaxLinks, "max-links", flagCfg.MaxLinks, "connectors available at once")
	f.StringSliceVar(&flagCfg.Ignore, "ignore", flagCfg.Ignore, "foci to ignore")
	f.IntVar(&flagCfg.Workers, "workers", flagCfg.Workers, "crew allocations explored concurrently")
	f.StringVar(&flagCfg.MetricsFile, "metrics-file", "", "write Prometheus counters to this file")
	f.BoolVar(&flagCfg.JSON, "json", false, "print survivors as JSON")

	rootCmd.AddCommand(historyCmd)
}

func applyFlags(cmd *cobra.Command, c *Config) {
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("verbose") {
		c.Verbose = flagCfg.Verbose
	}
	if changed("db") {
		c.DBPath = flagCfg.DBPath
	}
	if changed("catalog") {
		c.CatalogPath = flagCfg.CatalogPath
	}
	if changed("max-links") {
		c.MaxLinks = flagCfg.MaxLinks
	}
	if changed("ignore") {
		c.Ignore = flagCfg.Ignore
	}
	if changed("workers") {
		c.Workers = flagCfg.Workers
	}
	if changed("metrics-file") {
		c.MetricsFile = flagCfg.MetricsFile
	}
	if changed("json") {
		c.JSON = flagCfg.JSON
	}
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded",
		zap.Int("allocations", len(cat.Allocations)),
		zap.Int("shards", len(cat.Shards)),
		zap.Int("maxModules", cat.MaxModules))

	res, err := runSearch(cmd.Context(), cat, cfg, logger)
	if err != nil {
		return err
	}

	if cfg.DBPath != "" {
		store, err := OpenRunStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		id, err := store.SaveRun(cmd.Context(), RunRecord{
			MaxLinks:  cfg.MaxLinks,
			Ignore:    cfg.Ignore,
			Stats:     res.Stats,
			Survivors: res.Survivors,
		})
		if err != nil {
			return err
		}
		logger.Info("run stored", zap.String("id", id), zap.String("db", cfg.DBPath))
	}

	out := cmd.OutOrStdout()
	if cfg.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprint(out, "\n\n"+res.Table())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
