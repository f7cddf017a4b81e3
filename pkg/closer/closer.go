package closer

import (
	"context"
	"errors"
	"sync"

	"github.com/grupo99/catalog-service/pkg/logger"
)

type closeFn struct {
	name string
	fn   func(ctx context.Context) error
}

type closer struct {
	mu  sync.Mutex
	fns []closeFn
	log *logger.Logger
}

var global = &closer{log: logger.L()}

// SetLogger replaces the logger used while closing resources.
func SetLogger(l *logger.Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.log = l
}

// Add registers an anonymous shutdown hook.
func Add(fn func(ctx context.Context) error) {
	AddNamed("", fn)
}

// AddNamed registers a shutdown hook. Hooks run in reverse registration
// order, mirroring defer semantics.
func AddNamed(name string, fn func(ctx context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.fns = append(global.fns, closeFn{name: name, fn: fn})
}

// CloseAll runs every registered hook LIFO and joins their errors.
// The registered list is cleared so CloseAll is safe to call twice.
func CloseAll(ctx context.Context) error {
	global.mu.Lock()
	fns := global.fns
	global.fns = nil
	log := global.log
	global.mu.Unlock()

	var errs []error
	for i := len(fns) - 1; i >= 0; i-- {
		c := fns[i]
		if err := c.fn(ctx); err != nil {
			log.Error(ctx, "failed to close resource",
				logger.String("resource", c.name),
				logger.ErrorF(err),
			)
			errs = append(errs, err)
			continue
		}
		if c.name != "" {
			log.Info(ctx, "resource closed", logger.String("resource", c.name))
		}
	}

	return errors.Join(errs...)
}
