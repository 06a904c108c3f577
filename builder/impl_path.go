package builder

import (
	"fmt"

	"github.com/katalvlaran/edgestar/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for the chain 0 → 1 → … → n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor for the ring 0 → 1 → … → n-1 → 0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodCycle, n, true)
	}
}

func chain(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	if err := cfg.addVertices(g, method, n); err != nil {
		return err
	}

	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
		w := cfg.weight(g)
		if _, err := g.AddEdge(u, v, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
		}
	}

	return nil
}
