package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/engine"
	"othello/meta"
	"othello/metrics"
	"othello/searcher"
	"othello/searcher/agent"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <state-file> <action-file>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", os.Getenv(meta.ENV_PREFIX+"CONFIG"), "YAML config file")
	duration := flag.Duration("duration", meta.DURATION, "Search budget per decision")
	episodes := flag.Int("episodes", meta.EPISODES, "Fixed number of episodes, replaces the duration when positive")
	exploration := flag.Float64("exploration", meta.EXPLORATION, "Squared UCT exploration constant")
	seed := flag.Uint64("seed", 0, "Rollout seed, 0 seeds from the clock")
	stats := flag.String("stats", "", "CSV file collecting search records")
	logLevel := flag.String("log-level", meta.LOG_LEVEL, "Log level (trace, debug, info, warn, error)")
	logFormat := flag.String("log-format", meta.LOG_FORMAT, "Log format (console, json)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := meta.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	cfg.ApplyEnv()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.Duration = *duration
		case "episodes":
			cfg.Episodes = *episodes
		case "exploration":
			cfg.Exploration = *exploration
		case "seed":
			cfg.Seed = *seed
		case "stats":
			cfg.StatsFile = *stats
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	setupLogging(cfg)

	if err := run(cfg, flag.Arg(0), flag.Arg(1)); err != nil {
		log.Fatal().Err(err).Msg("decision failed")
	}
}

func setupLogging(cfg meta.Config) {
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Err(err).Msgf("unknown log level %q, using info", cfg.LogLevel)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func run(cfg meta.Config, statePath, actionPath string) error {
	var writer *metrics.Writer
	if cfg.StatsFile != "" {
		w, err := metrics.NewWriter(cfg.StatsFile)
		if err != nil {
			return err
		}
		writer = w
	}

	mcts := searcher.NewMCTS(cfg.Options()...)
	e := engine.NewEngine(agent.NewEvaluationAgent(mcts), writer)
	return e.RunFiles(statePath, actionPath)
}
