// Package main is the entry point for the hnsearch terminal client.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hnsearch/internal/config"
	"hnsearch/internal/eventbus"
	"hnsearch/internal/logging"
	"hnsearch/internal/logic"
	"hnsearch/internal/searchapi"
	"hnsearch/internal/ui"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd searches Hacker News interactively
var rootCmd = &cobra.Command{
	Use:   "hnsearch [term]",
	Short: "Search Hacker News from the terminal",
	Long: `hnsearch searches Hacker News stories and keeps every search in memory:
submitting a term you already searched shows its cached results instantly,
"m" loads the next page and "d" dismisses a story from the list.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: "+config.DefaultPath()+")")

	rootCmd.Flags().String("base-url", "", "search API base URL")
	rootCmd.Flags().Int("hits-per-page", 0, "results requested per page")
	rootCmd.Flags().String("log-file", "", "log file path")
	rootCmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(configCmd)
}

// newConfigService binds cmd's flags into a viper instance and returns a
// config service for the selected file
func newConfigService(cmd *cobra.Command) config.ConfigService {
	v := viper.New()
	bind := map[string]string{
		"api.base_url":      "base-url",
		"api.hits_per_page": "hits-per-page",
		"log.file":          "log-file",
		"log.level":         "log-level",
	}
	for key, name := range bind {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.NewConfigService(v)
	}
	return config.NewConfigServiceAt(path, v)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	svc := newConfigService(cmd)
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return svc.LoadFromPath(path)
	}
	return svc.Load()
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.DefaultTerm = args[0]
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closer, err := logging.OpenFile(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New(logger)
	defer bus.Close()

	activity := logic.NewMemoryActivityStore(logic.DefaultActivityCapacity)
	unsubscribe := logic.RecordActivity(bus, activity, time.Now)
	defer unsubscribe()

	for _, t := range eventbus.AllEventTypes {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			logger.Debug("session event", "type", e.Type(), "event", fmt.Sprintf("%+v", e))
		})
	}

	client := searchapi.New(searchapi.Options{
		BaseURL:     cfg.API.BaseURL,
		HitsPerPage: cfg.API.HitsPerPage,
		Timeout:     cfg.API.TimeoutDuration(),
		UserAgent:   cfg.API.UserAgent + "/" + version,
		Logger:      logger,
	})

	logger.Info("starting hnsearch", "term", cfg.DefaultTerm, "api", cfg.API.BaseURL)

	model := ui.NewModel(ctx, cfg, client, bus, activity, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("hnsearch exited")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
