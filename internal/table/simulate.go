package table

import (
	"context"
	"fmt"
	"math/rand/v2"

	"brisca-game/internal/bot"
	"brisca-game/internal/game"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SimOptions configures a batch of independent rounds.
type SimOptions struct {
	Rounds     int
	Workers    int
	Seed       uint64 // 0 picks a random seed
	Bots       []string
	MaxIllegal int
	Logger     *logrus.Logger
}

// Stats aggregates the results of a batch.
type Stats struct {
	Seed         uint64
	Rounds       int
	Team0Wins    int
	Team1Wins    int
	Draws        int
	Aborted      int
	TotalScore   [2]int
	Declarations int
	Exchanges    int
}

// AverageScore returns the mean round score of team over completed rounds.
func (s Stats) AverageScore(team int) float64 {
	completed := s.Rounds - s.Aborted
	if completed == 0 {
		return 0
	}
	return float64(s.TotalScore[team%2]) / float64(completed)
}

func (s *Stats) add(r Result) {
	s.Rounds++
	s.Declarations += r.Declarations
	s.Exchanges += r.Exchanges
	switch r.Outcome {
	case game.Team0Won:
		s.Team0Wins++
	case game.Team1Won:
		s.Team1Wins++
	case game.Draw:
		s.Draws++
	default:
		s.Aborted++
		return
	}
	s.TotalScore[0] += r.Score[0]
	s.TotalScore[1] += r.Score[1]
}

// Simulate plays opts.Rounds rounds on at most opts.Workers goroutines. Every
// round gets its own board, policies and random streams derived from the seed,
// so a batch is reproducible for a fixed seed regardless of scheduling.
func Simulate(ctx context.Context, opts SimOptions) (Stats, error) {
	if opts.Rounds <= 0 || opts.Workers <= 0 {
		return Stats{}, fmt.Errorf("rounds and workers must be positive (got %d, %d)", opts.Rounds, opts.Workers)
	}
	if len(opts.Bots) != game.NumSeats {
		return Stats{}, fmt.Errorf("need %d bots, got %d", game.NumSeats, len(opts.Bots))
	}
	if opts.Seed == 0 {
		opts.Seed = rand.Uint64()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	results := make([]Result, opts.Rounds)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := 0; i < opts.Rounds; i++ {
		g.Go(func() error {
			t, err := NewRound(i, opts)
			if err != nil {
				return err
			}
			res, err := t.Run(ctx)
			if err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	stats := Stats{Seed: opts.Seed}
	for _, r := range results {
		stats.add(r)
	}
	opts.Logger.Infof("Simulated %d rounds: team 0 won %d, team 1 won %d, %d draws, %d aborted.",
		stats.Rounds, stats.Team0Wins, stats.Team1Wins, stats.Draws, stats.Aborted)
	return stats, nil
}

// NewRound sets up round i of a batch. The first seat rotates with i.
func NewRound(i int, opts SimOptions, tableOpts ...Option) (*Table, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	entry := logrus.NewEntry(logger)
	stream := opts.Seed + uint64(i)

	board, err := game.NewBoard(i%game.NumSeats,
		game.WithRand(rand.New(rand.NewPCG(stream, 0))),
		game.WithLogger(entry))
	if err != nil {
		return nil, fmt.Errorf("failed to create round %d: %w", i, err)
	}

	var bots [game.NumSeats]bot.Behaviour
	for seat, name := range opts.Bots {
		if seat >= game.NumSeats {
			break
		}
		bots[seat], err = bot.New(name, rand.New(rand.NewPCG(stream, uint64(seat+1))))
		if err != nil {
			return nil, err
		}
	}
	for seat, b := range bots {
		if b == nil {
			return nil, fmt.Errorf("no bot for seat %d", seat)
		}
	}

	maxIllegal := opts.MaxIllegal
	if maxIllegal <= 0 {
		maxIllegal = 3
	}
	all := append([]Option{WithLogger(entry), WithMaxIllegal(maxIllegal)}, tableOpts...)
	return New(board, bots, all...), nil
}
