package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(execute())
}

// execute runs the configured mode and returns the exit code. Deferred calls, such as
// stopping the profiler, run before main exits.
func execute() int {
	config := parseFlags()

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if config.Profile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if err := run(config); err != nil {
		log.Error().Err(err).Msgf("%s failed", config.Mode)
		return 1
	}
	return 0
}

func parseFlags() meta.Config {
	defaults := meta.DefaultConfig()
	configPath := flag.String("config", "", "JSON config file; flags given explicitly override it")
	mode := flag.String("mode", defaults.Mode, "play (human vs computer), match, serve or experiment")
	depth := flag.Int("depth", defaults.Depth, "Search depth in plies")
	goroutines := flag.Int("goroutines", defaults.Goroutines, "Goroutines searching root children")
	leafOnly := flag.Bool("leaf-only", defaults.LeafOnly, "Store utilities on leaf nodes only")
	noValidation := flag.Bool("no-validation", defaults.NoValidation, "Skip checking the rules collaborator")
	port := flag.String("port", defaults.Port, "Agent server port")
	opponent := flag.String("opponent", defaults.Opponent, "Match opponent: random, alphabeta or an agent server URL")
	opponentDepth := flag.Int("opponent-depth", defaults.OpponentDepth, "Search depth of an alphabeta opponent")
	seed := flag.Uint64("seed", defaults.Seed, "Seed for random agents")
	numGames := flag.Int("games", defaults.NumGames, "Games per experiment matchup")
	experiment := flag.String("experiment", defaults.Experiment, "Experiment to run: depth or pruning")
	experimentDir := flag.String("experiment-dir", defaults.ExperimentDir, "Directory for experiment results")
	maxDepth := flag.Int("max-depth", defaults.MaxDepth, "Largest depth in the depth experiment")
	logLevel := flag.String("level", defaults.LogLevel, "Log level")
	prof := flag.Bool("profile", defaults.Profile, "Write a CPU profile to the working directory")
	remoteTimeout := flag.String("remote-timeout", defaults.RemoteTimeout, "Timeout for remote agent requests")
	flag.Parse()

	config := defaults
	if *configPath != "" {
		loaded, err := meta.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		config = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			config.Mode = *mode
		case "depth":
			config.Depth = *depth
		case "goroutines":
			config.Goroutines = *goroutines
		case "leaf-only":
			config.LeafOnly = *leafOnly
		case "no-validation":
			config.NoValidation = *noValidation
		case "port":
			config.Port = *port
		case "opponent":
			config.Opponent = *opponent
		case "opponent-depth":
			config.OpponentDepth = *opponentDepth
		case "seed":
			config.Seed = *seed
		case "games":
			config.NumGames = *numGames
		case "experiment":
			config.Experiment = *experiment
		case "experiment-dir":
			config.ExperimentDir = *experimentDir
		case "max-depth":
			config.MaxDepth = *maxDepth
		case "level":
			config.LogLevel = *logLevel
		case "profile":
			config.Profile = *prof
		case "remote-timeout":
			config.RemoteTimeout = *remoteTimeout
		}
	})

	if err := config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return config
}

func run(config meta.Config) error {
	rules := game.NewStandardRules()

	switch config.Mode {
	case "serve":
		return agent.StartAgentServer(config.Port, agent.NewEvaluationAgent(newSearcher(rules, config, config.Depth)))
	case "match":
		opponent, err := newOpponent(rules, config)
		if err != nil {
			return err
		}
		e := engine.LocalEngine(rules, agent.NewEvaluationAgent(newSearcher(rules, config, config.Depth)), opponent)
		winner, gameMetric, _, err := e.Run()
		if err != nil {
			return err
		}
		fmt.Print(e.Board.String())
		fmt.Printf("winner: %s (black %d, white %d)\n", winner, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)
		return nil
	case "experiment":
		x := experiments.Experiment{
			Name:     config.Experiment,
			Dir:      config.ExperimentDir,
			NumGames: config.NumGames,
			Seed:     config.Seed,
		}
		var err error
		switch config.Experiment {
		case "depth":
			depths := []int{}
			for d := 1; d <= config.MaxDepth; d++ {
				depths = append(depths, d)
			}
			_, err = x.RunDepth(depths)
		case "pruning":
			_, err = x.RunPruning(config.Depth)
		default:
			err = fmt.Errorf("unknown experiment %q", config.Experiment)
		}
		return err
	default:
		computer := player.NewPlayer(game.White, newSearcher(rules, config, config.Depth))
		return playHuman(os.Stdin, os.Stdout, rules, computer)
	}
}

func newSearcher(rules game.Rules, config meta.Config, depth int) *searcher.AlphaBeta {
	options := []searcher.Option{
		searcher.WithDepth(depth),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithValidation(!config.NoValidation),
		searcher.WithMetrics(),
	}
	if config.LeafOnly {
		options = append(options, searcher.WithLeafOnlyUtility())
	}
	return searcher.NewAlphaBeta(rules, options...)
}

func newOpponent(rules game.Rules, config meta.Config) (agent.Agent, error) {
	switch {
	case config.Opponent == "random":
		return agent.NewRandomAgent(rules, config.Seed), nil
	case config.Opponent == "alphabeta":
		return agent.NewEvaluationAgent(newSearcher(rules, config, config.OpponentDepth)), nil
	case strings.HasPrefix(config.Opponent, "http://") || strings.HasPrefix(config.Opponent, "https://"):
		timeout, err := time.ParseDuration(config.RemoteTimeout)
		if err != nil {
			return nil, err
		}
		return engine.RemoteAgent(config.Opponent, timeout), nil
	default:
		return nil, fmt.Errorf("unknown opponent %q", config.Opponent)
	}
}

// playHuman lets a human play black from in against computer
func playHuman(in io.Reader, out io.Writer, rules game.Rules, computer *player.Player) error {
	board := game.NewBoard()
	scanner := bufio.NewScanner(in)
	turn := game.Black

	for !game.IsOver(rules, board) {
		fmt.Fprint(out, board.String())

		if turn == computer.Turn {
			move, err := computer.SelectTile(board)
			if err != nil && !errors.Is(err, searcher.ErrNoMove) {
				return err
			}
			legal := rules.SelectableTiles(board, turn)
			if len(legal) == 0 {
				fmt.Fprintln(out, "computer passes")
				turn = turn.Opponent()
				continue
			}
			if !slices.Contains(legal, move) {
				log.Warn().Msgf("computer chose %s with %d legal moves, forcing %s", move, len(legal), legal[0])
				move = legal[0]
			}
			rules.Play(board, move, turn)
			fmt.Fprintf(out, "computer plays %s\n", move)
			turn = turn.Opponent()
			continue
		}

		legal := rules.SelectableTiles(board, turn)
		if len(legal) == 0 {
			fmt.Fprintln(out, "you have to pass")
			turn = turn.Opponent()
			continue
		}
		fmt.Fprintf(out, "your move (%s): ", turn)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return fmt.Errorf("game abandoned: %w", io.ErrUnexpectedEOF)
		}
		move, ok := game.ParseMove(strings.TrimSpace(scanner.Text()))
		if !ok || len(rules.SwappablePieces(board, move, turn)) == 0 {
			fmt.Fprintln(out, "illegal move")
			continue
		}
		rules.Play(board, move, turn)
		turn = turn.Opponent()
	}

	fmt.Fprint(out, board.String())
	black, white := game.CountDiscs(board)
	fmt.Fprintf(out, "game over: black %d, white %d, winner %s\n", black, white, game.Winner(board))
	return nil
}
