package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/passdesk/passdesk/internal/config"
	"github.com/passdesk/passdesk/internal/config/data"
	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/logutil"
	"github.com/passdesk/passdesk/internal/view"
)

const (
	appName    = "passdesk"
	appVersion = "0.1.0"
)

var (
	pdFlags *data.Flags
	rootCmd = &cobra.Command{
		Use:   appName,
		Short: "A terminal UI for browsing offers, grants and passholders",
		Long:  `passdesk is a terminal-based UI for paging, filtering and selecting pass desk records.`,
		RunE:  run,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, appVersion)
		},
	}
)

func init() {
	pdFlags = config.NewFlags()
	initPassdeskFlags()
	rootCmd.AddCommand(versionCmd)
}

func initPassdeskFlags() {
	rootCmd.Flags().StringVar(pdFlags.ConfigFile, "config", "", "Config file path")
	rootCmd.Flags().StringVarP(pdFlags.LogLevel, "logLevel", "l", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(pdFlags.LogFile, "logFile", "", "Log file path")
	rootCmd.Flags().StringVarP(pdFlags.Command, "command", "c", "", "Startup view, e.g. 'grants status=ACTIVE'")
	rootCmd.Flags().BoolVar(pdFlags.ReadOnly, "readonly", false, "Hide row actions that change records")
	rootCmd.Flags().IntVar(pdFlags.PageSize, "pageSize", 0, "Initial page size")

	// Data source flags
	rootCmd.Flags().StringVar(pdFlags.Driver, "driver", "", "Database driver (sqlite, pgx)")
	rootCmd.Flags().StringVar(pdFlags.DSN, "dsn", "", "Database connection string")
	rootCmd.Flags().IntVar(pdFlags.Seed, "seed", 0, "Populate empty tables with N demo records each")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// 1. Initialize locations
	if err := config.InitLocs(); err != nil {
		return fmt.Errorf("failed to initialize locations: %w", err)
	}

	// 2. Create and load configuration
	cfgFile := config.AppConfigFile
	if config.IsStringSet(pdFlags.ConfigFile) {
		cfgFile = *pdFlags.ConfigFile
	}
	cfg := config.NewConfig()
	if err := cfg.Load(cfgFile, config.IsStringSet(pdFlags.ConfigFile)); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 3. Apply CLI overrides and validate
	if err := cfg.Refine(pdFlags); err != nil {
		return fmt.Errorf("failed to refine configuration: %w", err)
	}
	_ = cfg.Save(false)

	// 4. Load aliases and per-view preferences
	aliases := config.NewAliases()
	if err := aliases.Load(); err != nil {
		return fmt.Errorf("failed to load aliases: %w", err)
	}
	if err := cfg.Views.Load(config.AppViewsFile); err != nil {
		return fmt.Errorf("failed to load view preferences: %w", err)
	}

	// 5. Logger
	logger, err := logutil.NewLogger(&cfg.Passdesk.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// 6. Open the data source
	ctx := context.Background()
	ds := cfg.Passdesk.DataSource
	store, err := dao.Open(ctx, ds.Driver, ds.DSN)
	if err != nil {
		return fmt.Errorf("failed to open %s data source: %w", ds.Driver, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close data source", zap.Error(err))
		}
	}()
	logger.Info("Data source opened", zap.String("driver", ds.Driver))

	if *pdFlags.Seed > 0 {
		if err := store.Seed(ctx, *pdFlags.Seed); err != nil {
			return fmt.Errorf("failed to seed data source: %w", err)
		}
	}

	// 7. Create and initialize the TUI application
	app := view.NewApp(cfg, aliases, dao.NewFactory(store), logger, appVersion)
	if err := app.Init(); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// 8. Run the application
	return app.Run(*pdFlags.Command)
}
