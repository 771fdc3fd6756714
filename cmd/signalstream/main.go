package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/quantfold/signalstream/internal/config"
	"github.com/quantfold/signalstream/internal/datasource"
	"github.com/quantfold/signalstream/internal/engine"
	"github.com/quantfold/signalstream/internal/indicator"
	"github.com/quantfold/signalstream/internal/logger"
	"github.com/quantfold/signalstream/internal/strategy"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// replayAction is the core logic executed by the CLI command. It loads the
// configuration, builds the engine and streams the CSV bars through it,
// printing each emitted signal as one JSON line.
func replayAction(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	dataPath := cmd.String("data")
	symbol := cmd.String("symbol")

	fileCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	engineCfg, err := strategy.Build(fileCfg)
	if err != nil {
		return fmt.Errorf("failed to build strategy: %w", err)
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync() //nolint:errcheck // best-effort flush on exit

	eng, err := engine.New(engineCfg, indicator.DefaultRegistry(), appLogger)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	source := datasource.NewCSVSource(dataPath, symbol)

	events, err := source.Events()
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)

	for _, event := range events {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		signals, err := eng.ProcessEvent(event)
		if err != nil {
			return fmt.Errorf("evaluation failed: %w", err)
		}

		for _, signal := range signals {
			if err := encoder.Encode(signal); err != nil {
				return fmt.Errorf("failed to encode signal: %w", err)
			}
		}
	}

	stats := eng.Stats()
	appLogger.Info("replay finished",
		zap.Int("events", stats.Events),
		zap.Int("bars", stats.Bars),
		zap.Int("signals", stats.Signals()),
		zap.Int("buy", stats.BuySignals),
		zap.Int("sell", stats.SellSignals),
	)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "signalstream",
		Usage: "Replay a CSV bar stream through a signal engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Path to the YAML engine configuration",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "data",
				Aliases:  []string{"d"},
				Usage:    "Path to the CSV bar file",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "symbol",
				Aliases: []string{"s"},
				Usage:   "Default symbol for rows without one",
				Value:   "UNKNOWN",
			},
		},
		Action: replayAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
