package builder

import (
	"fmt"

	"github.com/katalvlaran/edgestar/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that includes each admissible edge
// independently with probability p. Undirected graphs try unordered pairs
// i<j; directed graphs try ordered pairs, with self-loops only when the
// graph allows them. Trial order is i asc, then j asc.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := cfg.addVertices(g, methodRandomSparse, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			j0 := i + 1
			if g.Directed() {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j && !g.Looped() {
					continue
				}
				if !bernoulli(cfg, p) {
					continue
				}
				u, v := cfg.idFn(i), cfg.idFn(j)
				w := cfg.weight(g)
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}

// bernoulli is deterministic for p ∈ {0,1} and needs no RNG there.
func bernoulli(cfg builderConfig, p float64) bool {
	switch {
	case p == 0:
		return false
	case p == 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
