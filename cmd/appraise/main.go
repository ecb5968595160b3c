package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rickgao/eve-appraisal/internal/app"
	"github.com/rickgao/eve-appraisal/internal/config"
	"github.com/rickgao/eve-appraisal/internal/model"
	"github.com/rickgao/eve-appraisal/internal/parser"
	"github.com/rickgao/eve-appraisal/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	envFile := flag.String("env", ".env", "optional dotenv file loaded before the config")
	market := flag.Int64("market", 0, "system ID to price in, -1 for trade hub regions")
	file := flag.String("file", "-", "paste to appraise, - for stdin")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	os.Exit(run(*configPath, *envFile, *market, *file))
}

func run(configPath, envFile string, market int64, file string) int {
	// Missing .env is fine; values may come from the environment.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load %s: %v\n", envFile, err)
		return 1
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	logger := cfg.Log.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	if market == 0 {
		market = cfg.Market.Default
	}
	if !slices.Contains(cfg.Markets, market) {
		logger.Error("market not allowed", "market", market, "allowed", cfg.Markets)
		return 1
	}
	scope, _ := model.LookupScope(market)

	raw, err := readInput(file)
	if err != nil {
		logger.Error("failed to read paste", "file", file, "error", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		return 1
	}
	defer a.Close()

	result, err := a.Appraiser.Appraise(ctx, raw, scope)
	if errors.Is(err, parser.ErrUnparsable) {
		logger.Error("no valid items found")
		return 2
	}
	if err != nil {
		logger.Error("appraisal failed", "error", err)
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("failed to write appraisal", "error", err)
		return 1
	}

	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Defaults()
		return cfg, cfg.Validate()
	}
	return config.LoadAndValidate(path)
}

func readInput(file string) (string, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(file)
	return string(data), err
}
