package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	writer, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.DirExists(t, writer.Dir())

	t.Run("agent configs", func(t *testing.T) {
		err := writer.WriteAgentConfigs([]AgentConfig{{ID: 1, Depth: 4, Goroutines: 2}, {ID: 2, Random: true}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3, "Header plus one row per config")
		require.Equal(t, []string{"1", "false", "4", "2", "true"}, rows[1])
		require.Equal(t, "true", rows[2][1])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		err := writer.WriteGameRecords([]GameRecord{{
			ID: 1, Agent1: 1, Agent2: 2,
			GameMetric: GameMetric{StartingPlayer: 1, Winner: "black", StartTime: start, EndTime: start.Add(time.Second),
				Duration: time.Second, TotalMoves: 60, BlackDiscs: 40, WhiteDiscs: 24, Margin: 0.25},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "black", rows[1][4])
		require.Equal(t, "40", rows[1][5])
		require.Equal(t, "1s", rows[1][11])
		require.Equal(t, "0.25", rows[1][12], "Margin should be the last column")
	})

	t.Run("move records", func(t *testing.T) {
		err := writer.WriteMoveRecords([]MoveRecord{{
			Game:       1,
			MoveMetric: MoveMetric{Step: 3, Player: -1, SearchMetric: SearchMetric{Depth: 4, Pruning: true, NodesBuilt: 100, Cutoffs: 7, Utility: 2}},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "3", "-1", "4", "0", "true"}, rows[1][:6])
		require.Equal(t, "100", rows[1][7])
		require.Equal(t, "7", rows[1][10])
		require.Equal(t, "2", rows[1][11])
	})
}

func TestCollector(t *testing.T) {
	t.Run("counts and resets", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, 1, true)
		c.AddNode()
		c.AddNode()
		c.AddVisit()
		c.AddLeafEval()
		c.AddCutoff()

		got := c.Complete(5)
		require.Equal(t, SearchMetric{Depth: 3, Goroutines: 1, Pruning: true, Duration: got.Duration,
			NodesBuilt: 2, NodesVisited: 1, LeafEvals: 1, Cutoffs: 1, Utility: 5}, got)

		c.Start(2, 1, false)
		require.Equal(t, 0, c.Complete(0).NodesBuilt, "Start should reset counters")
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3, 1, true)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete(5))
	})
}
