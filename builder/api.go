// Package builder: the Build orchestrator and the Constructor type.
package builder

import (
	"fmt"

	"github.com/visigraph/visigraph/core"
)

// Constructor applies one graph mutation using the resolved config.
// Constructors validate parameters early, return sentinel errors, and
// preserve determinism for a fixed config and call order.
type Constructor func(g *core.Graph, cfg config) error

// Build creates a graph with the given storage backends, resolves the
// options, and applies all constructors in order. The first constructor
// error aborts the build; no partial cleanup is attempted.
func Build(storage core.StorageKind, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(core.WithStorage(storage))
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
