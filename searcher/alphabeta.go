package searcher

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(ab *AlphaBeta)

// AlphaBeta picks moves by building a fixed-depth tree from the current board and
// searching it with alpha-beta pruning. Nothing is kept between decisions, so one
// AlphaBeta may serve several games at once.
type AlphaBeta struct {
	rules      game.Rules
	depth      int
	goroutines int
	pruning    bool
	leafOnly   bool
	validate   bool
	metrics    bool
}

// Decision is the outcome of one search. Found is false when the root had no
// children, either because the side to move has no legal move or the depth is 0.
type Decision struct {
	Move    game.Move
	Found   bool
	Utility float64
	Root    *Node
	Metric  metrics.SearchMetric
}

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth >= 0 {
			ab.depth = depth
		}
	}
}

// WithGoroutines searches the root's children in parallel
func WithGoroutines(goroutines int) Option {
	return func(ab *AlphaBeta) {
		if goroutines > 0 {
			ab.goroutines = goroutines
		}
	}
}

// WithoutPruning searches the full tree with plain minimax
func WithoutPruning() Option {
	return func(ab *AlphaBeta) {
		ab.pruning = false
	}
}

// WithLeafOnlyUtility stores utilities on leaves only, leaving internal nodes unset
func WithLeafOnlyUtility() Option {
	return func(ab *AlphaBeta) {
		ab.leafOnly = true
	}
}

func WithValidation(validate bool) Option {
	return func(ab *AlphaBeta) {
		ab.validate = validate
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = true
	}
}

func NewAlphaBeta(rules game.Rules, options ...Option) *AlphaBeta {
	if rules == nil {
		panic("rules must not be nil")
	}
	ab := &AlphaBeta{ // Default values
		rules:      rules,
		depth:      DefaultDepth,
		goroutines: 1,
		pruning:    true,
		validate:   true,
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

func (ab *AlphaBeta) Depth() int {
	return ab.depth
}

// SelectMove returns the best move for player, or ErrNoMove if there is none
func (ab *AlphaBeta) SelectMove(board *game.Board, player game.Color) (game.Move, error) {
	decision, err := ab.Decide(board, player)
	if err != nil {
		return game.NoMove, err
	}
	if !decision.Found {
		return game.NoMove, ErrNoMove
	}
	return decision.Move, nil
}

// Decide builds and searches the tree for player on board. The returned error is
// non-nil only when the rules collaborator broke its contract or player is not a color.
func (ab *AlphaBeta) Decide(board *game.Board, player game.Color) (Decision, error) {
	if player != game.Black && player != game.White {
		return Decision{}, fmt.Errorf("%w: %d is not a player color", ErrContract, player)
	}

	s := ab.newSearch(player)
	s.metrics.Start(ab.depth, ab.goroutines, ab.pruning)

	root := newRoot(board)
	s.expand(root, ab.depth, player)
	if err := s.rules.Err(); err != nil {
		return Decision{}, err
	}

	var utility float64
	if ab.goroutines > 1 {
		utility = s.runParallel(root, ab.depth, ab.goroutines)
	} else {
		utility = s.run(root, ab.depth)
	}
	if err := s.rules.Err(); err != nil {
		return Decision{}, err
	}

	decision := Decision{Move: game.NoMove, Utility: utility, Root: root}
	decision.Move, decision.Found = s.choose(root, ab.depth, utility)
	decision.Metric = s.metrics.Complete(utility)

	log.Debug().Msgf("%s: move %d utility %g from %d children (depth %d, found %t)",
		player, decision.Move, utility, len(root.Children), ab.depth, decision.Found)
	return decision, nil
}

func (ab *AlphaBeta) newSearch(player game.Color) *search {
	collector := metrics.NewDummyCollector()
	if ab.metrics {
		collector = metrics.NewCollector()
	}
	return &search{
		rules:    newGuard(ab.rules, ab.validate),
		player:   player,
		pruning:  ab.pruning,
		leafOnly: ab.leafOnly,
		metrics:  collector,
	}
}

// runParallel searches each root child with a full window on its own goroutine. Each
// subtree is touched by exactly one goroutine, and the root folds the results in
// child order, so the outcome matches the sequential search.
func (s *search) runParallel(root *Node, depth int, goroutines int) float64 {
	if depth <= 0 || root.IsLeaf() {
		return s.run(root, depth)
	}
	s.metrics.AddVisit()

	values := make([]float64, len(root.Children))
	g := errgroup.Group{}
	g.SetLimit(goroutines)
	for i, child := range root.Children {
		i, child := i, child
		g.Go(func() error {
			values[i] = s.run(child, depth-1)
			return s.rules.Err()
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Msg("parallel search hit a rules violation")
	}

	best := negInf
	for _, v := range values {
		best = max(best, v)
	}
	if !s.leafOnly {
		root.setUtility(best)
	}
	return best
}
