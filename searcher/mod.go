package searcher

import (
	"errors"
	"math"
)

// Side is the role a node plays in the tree. The root is always the Maximizer and
// roles alternate with depth.
type Side int8

const (
	Maximizer Side = 1
	Minimizer Side = -1
)

func (s Side) Opposite() Side {
	return -s
}

func (s Side) String() string {
	if s == Maximizer {
		return "max"
	}
	return "min"
}

const DefaultDepth = 4

var (
	ErrNoMove   = errors.New("no move available")
	ErrContract = errors.New("rules contract violation")
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)
