package orchestrator

import (
	"context"
	"runtime"

	"go.trai.ch/brief/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Request is one PrepareContext call of a batch.
type Request struct {
	Project *domain.Project
	Task    string
	Options []Option
}

// PrepareBatch prepares several projects concurrently, bounded by GOMAXPROCS.
// Payloads are returned in request order. Requests for the same project are
// not serialised. It only fails when ctx is done before every request started.
func (e *Engine) PrepareBatch(ctx context.Context, requests []Request) ([]*domain.ContextPayload, error) {
	payloads := make([]*domain.ContextPayload, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range requests {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			req := requests[i]
			payloads[i] = e.PrepareContext(gctx, req.Project, req.Task, req.Options...)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return payloads, nil
}
