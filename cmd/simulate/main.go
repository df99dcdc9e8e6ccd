package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"brisca-game/internal/config"
	"brisca-game/internal/table"

	"github.com/sirupsen/logrus"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file")
	rounds := flag.Int("rounds", 0, "rounds to simulate")
	workers := flag.Int("workers", 0, "rounds played concurrently")
	seed := flag.Uint64("seed", 0, "random seed (0 = random)")
	bots := flag.String("bots", "", "comma-separated policy per seat")
	level := flag.String("log-level", "", "log level")
	events := flag.Bool("events", false, "print round events as JSON lines (single round only)")
	maxIllegal := flag.Int("max-illegal", 0, "illegal attempts tolerated before aborting a round")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Flags explicitly set on the command line win over the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rounds":
			cfg.Rounds = *rounds
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		case "bots":
			cfg.Bots = config.ParseBots(*bots)
		case "log-level":
			cfg.LogLevel = *level
		case "events":
			cfg.Events = *events
		case "max-illegal":
			cfg.MaxIllegal = *maxIllegal
		}
	})
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid config: %v", err)
	}

	logger := cfg.Logger()
	logger.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := table.SimOptions{
		Rounds:     cfg.Rounds,
		Workers:    cfg.Workers,
		Seed:       cfg.Seed,
		Bots:       cfg.Bots,
		MaxIllegal: cfg.MaxIllegal,
		Logger:     logger,
	}

	if cfg.Rounds == 1 && cfg.Events {
		if err := runSingle(ctx, opts); err != nil {
			logger.Fatalf("Round failed: %v", err)
		}
		return
	}

	logger.Infof("Simulating %d rounds on %d workers with bots %s.", cfg.Rounds, cfg.Workers, strings.Join(cfg.Bots, ","))
	stats, err := table.Simulate(ctx, opts)
	if err != nil {
		logger.Fatalf("Simulation failed: %v", err)
	}
	printStats(stats, cfg.Bots)
}

func runSingle(ctx context.Context, opts table.SimOptions) error {
	if opts.Seed == 0 {
		opts.Seed = uint64(os.Getpid())
	}
	t, err := table.NewRound(0, opts, table.WithSender(func(message []byte) {
		fmt.Println(string(message))
	}))
	if err != nil {
		return err
	}
	_, err = t.Run(ctx)
	return err
}

func printStats(s table.Stats, bots []string) {
	fmt.Printf("seed:          %d\n", s.Seed)
	fmt.Printf("rounds:        %d\n", s.Rounds)
	fmt.Printf("team 0 (%s+%s): %d wins, avg %.1f points\n", bots[0], bots[2], s.Team0Wins, s.AverageScore(0))
	fmt.Printf("team 1 (%s+%s): %d wins, avg %.1f points\n", bots[1], bots[3], s.Team1Wins, s.AverageScore(1))
	fmt.Printf("draws:         %d\n", s.Draws)
	fmt.Printf("aborted:       %d\n", s.Aborted)
	fmt.Printf("declarations:  %d\n", s.Declarations)
	fmt.Printf("exchanges:     %d\n", s.Exchanges)
}
