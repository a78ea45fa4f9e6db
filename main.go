package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"othello/config"
	"othello/experiments"
	"othello/experiments/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprint(os.Stderr, config.Usage())
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n%s", err, config.Usage())
		os.Exit(2)
	}

	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Str("command", cfg.Command).Msg("experiment failed")
		stop()
		os.Exit(1)
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func run(ctx context.Context, cfg *config.Config) error {
	switch cfg.Command {
	case config.CommandRate:
		_, err := experiments.RunRating(ctx, cfg.Agent(), cfg.Rounds, cfg.OutputDir)
		return err

	case config.CommandRank:
		_, err := experiments.RunRanking(ctx, cfg.Players, cfg.Games, cfg.Workers, cfg.OutputDir)
		return err

	case config.CommandSelfPlay:
		first, second := cfg.Agent(), cfg.Agent()
		if len(cfg.Players) >= 2 {
			first, second = cfg.Players[0], cfg.Players[1]
		}
		_, err := experiments.RunSelfPlay(ctx, first, second, cfg.Games, cfg.Workers, cfg.OutputDir)
		return err

	case config.CommandThroughput:
		players := cfg.Players
		if len(players) == 0 {
			players = []metrics.AgentConfig{cfg.Agent()}
		}
		_, err := experiments.RunThroughput(ctx, players, cfg.Games, cfg.OutputDir)
		return err

	default:
		return fmt.Errorf("%w %q", config.ErrUnknownCommand, cfg.Command)
	}
}
