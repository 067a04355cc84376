package experiments

import (
	"fmt"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Experiment is a set of matchups between agent configs, each played NumGames times
type Experiment struct {
	Name     string
	Dir      string // Results are written under Dir/Name
	NumGames int
	Seed     uint64 // Seed for random agents
}

// RunDepth pits alpha-beta agents of increasing depth against a random baseline
func (x Experiment) RunDepth(depths []int) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Random: true}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range depths {
		config := metrics.AgentConfig{ID: i + 1, Depth: depth, Goroutines: 1}
		configs = append(configs, config)
		// Alternate colors so neither agent always moves first
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline}, []metrics.AgentConfig{baseline, config})
	}
	return x.run(configs, matchUps)
}

// RunPruning plays the same depth with and without pruning so the node counts in the
// move records can be compared; both sides choose identical moves
func (x Experiment) RunPruning(depth int) (string, error) {
	pruned := metrics.AgentConfig{ID: 1, Depth: depth, Goroutines: 1}
	full := metrics.AgentConfig{ID: 2, Depth: depth, Goroutines: 1, NoPruning: true}
	configs := []metrics.AgentConfig{pruned, full}
	matchUps := [][]metrics.AgentConfig{{pruned, full}, {full, pruned}}
	return x.run(configs, matchUps)
}

func (x Experiment) run(configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchup := range matchUps {
		black, white := matchup[0], matchup[1]

		log.Info().Msgf("starting matchup %d of %d between black=%+v and white=%+v...", mi+1, len(matchUps), black, white)

		for i := 0; i < x.NumGames; i++ {
			count++
			e := engine.LocalEngine(game.NewStandardRules(),
				x.createAgent(black, uint64(count)), x.createAgent(white, uint64(count)+1))

			winner, gameMetric, moveMetrics, err := runGame(e)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     black.ID,
				Agent2:     white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	writer, err := metrics.NewWriter(x.Dir, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame executes a single game and returns the winner
func runGame(r engine.Runner) (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	return r.Run()
}

func (x Experiment) createAgent(config metrics.AgentConfig, gameID uint64) agent.Agent {
	rules := game.NewStandardRules()
	if config.Random {
		return agent.NewRandomAgent(rules, x.Seed+gameID)
	}
	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithMetrics(),
	}
	if config.NoPruning {
		options = append(options, searcher.WithoutPruning())
	}
	return agent.NewEvaluationAgent(searcher.NewAlphaBeta(rules, options...))
}
