package pipeline

import (
	"context"

	"github.com/electwix/svcgen/internal/catalog"
)

// Hooks provides extension points in the pipeline execution.
type Hooks struct {
	// AfterLoad is called once all catalogs are loaded and validated.
	// Return an error to abort the pipeline.
	AfterLoad func(ctx context.Context, cat catalog.Catalog) error

	// AfterGenerate is called with the rendered report before it is written.
	// Return an error to abort the pipeline.
	AfterGenerate func(ctx context.Context, output []byte) error
}

// Chain combines two Hooks, calling h's hooks first, then other's hooks.
// If a hook in h returns an error, other's hook is not called.
func (h Hooks) Chain(other Hooks) Hooks {
	return Hooks{
		AfterLoad:     chainHook(h.AfterLoad, other.AfterLoad),
		AfterGenerate: chainHook(h.AfterGenerate, other.AfterGenerate),
	}
}

func chainHook[T any](first, second func(context.Context, T) error) func(context.Context, T) error {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	return func(ctx context.Context, arg T) error {
		if err := first(ctx, arg); err != nil {
			return err
		}
		return second(ctx, arg)
	}
}
