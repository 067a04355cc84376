package meta

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DEPTH is the search depth in plies.
const DEPTH = 4

// GO_ROUTINES is the number of goroutines searching the root's children.
const GO_ROUTINES = 1

// NUM_GAMES is the number of games per experiment matchup.
const NUM_GAMES = 10

// PORT is the agent server port.
const PORT = "8080"

// REMOTE_TIMEOUT bounds a request to a remote agent.
const REMOTE_TIMEOUT = 30 * time.Second

type Config struct {
	Mode          string `json:"mode"` // play, match, serve or experiment
	Depth         int    `json:"depth"`
	Goroutines    int    `json:"goroutines"`
	LeafOnly      bool   `json:"leaf_only_utility"`
	NoValidation  bool   `json:"no_validation"`
	Port          string `json:"port"`
	Opponent      string `json:"opponent"` // random, alphabeta or an agent server URL
	OpponentDepth int    `json:"opponent_depth"`
	Seed          uint64 `json:"seed"`
	NumGames      int    `json:"num_games"`
	Experiment    string `json:"experiment"` // depth or pruning
	ExperimentDir string `json:"experiment_dir"`
	MaxDepth      int    `json:"max_depth"`
	LogLevel      string `json:"log_level"`
	Profile       bool   `json:"profile"`
	RemoteTimeout string `json:"remote_timeout"`
}

func DefaultConfig() Config {
	return Config{
		Mode:          "play",
		Depth:         DEPTH,
		Goroutines:    GO_ROUTINES,
		Port:          PORT,
		Opponent:      "random",
		OpponentDepth: DEPTH,
		Seed:          1,
		NumGames:      NUM_GAMES,
		Experiment:    "depth",
		ExperimentDir: "experiments",
		MaxDepth:      DEPTH,
		LogLevel:      "info",
		RemoteTimeout: REMOTE_TIMEOUT.String(),
	}
}

// LoadConfig overlays the JSON file at path onto the defaults
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	// A depth 0 search never finds a move, so a player using it would always pass
	if c.Depth < 1 {
		return fmt.Errorf("depth must be at least 1, got %d", c.Depth)
	}
	if c.Mode == "match" && c.Opponent == "alphabeta" && c.OpponentDepth < 1 {
		return fmt.Errorf("opponent_depth must be at least 1, got %d", c.OpponentDepth)
	}
	if c.Mode == "experiment" && c.Experiment == "depth" && c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be at least 1, got %d", c.MaxDepth)
	}
	if c.Goroutines < 1 {
		return fmt.Errorf("goroutines must be at least 1, got %d", c.Goroutines)
	}
	if c.NumGames < 1 {
		return fmt.Errorf("num_games must be at least 1, got %d", c.NumGames)
	}
	if _, err := time.ParseDuration(c.RemoteTimeout); err != nil {
		return fmt.Errorf("invalid remote_timeout: %w", err)
	}
	switch c.Mode {
	case "play", "match", "serve", "experiment":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}
