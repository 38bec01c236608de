// Package closer collects shutdown hooks and runs them LIFO on exit.
package closer

import (
	"context"
	"sync"

	"github.com/Radek987976/hyperbare-manager/internal/logger"
)

type namedCloser struct {
	name string
	fn   func(ctx context.Context) error
}

var (
	mu      sync.Mutex
	closers []namedCloser
)

// AddNamed registers a shutdown hook. Hooks run in reverse registration
// order.
func AddNamed(name string, fn func(ctx context.Context) error) {
	mu.Lock()
	defer mu.Unlock()
	closers = append(closers, namedCloser{name: name, fn: fn})
}

// CloseAll runs every registered hook, logging failures instead of
// aborting the sequence.
func CloseAll(ctx context.Context) {
	mu.Lock()
	list := make([]namedCloser, len(closers))
	copy(list, closers)
	closers = nil
	mu.Unlock()

	for i := len(list) - 1; i >= 0; i-- {
		c := list[i]
		if err := c.fn(ctx); err != nil {
			logger.Error(ctx, "close failed",
				logger.String("name", c.name),
				logger.ErrorF(err),
			)
			continue
		}
		logger.Info(ctx, "closed", logger.String("name", c.name))
	}
}
