// Package imaging runs the best-effort background crop of uploaded
// avatars. Jobs are fire-and-forget: the caller never observes the
// result, failures are only logged.
package imaging

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CropperI interface {
	EnqueueCrop(path string)
}

type Pool struct {
	jobs chan string
	g    *errgroup.Group
}

func NewPool(size int) *Pool {
	p := &Pool{
		jobs: make(chan string, size*4),
		g:    &errgroup.Group{},
	}
	for i := 0; i < size; i++ {
		p.g.Go(p.worker)
	}
	return p
}

func (p *Pool) worker() error {
	for path := range p.jobs {
		if err := CropFile(path); err != nil {
			zap.L().Error("image crop failed", zap.String("path", path), zap.Error(err))
		}
	}
	return nil
}

// EnqueueCrop schedules a crop of the image at path. When the queue is
// full the job is dropped, matching the best-effort contract.
func (p *Pool) EnqueueCrop(path string) {
	select {
	case p.jobs <- path:
	default:
		zap.L().Warn("crop queue full, dropping job", zap.String("path", path))
	}
}

// Close drains the queue and stops the workers.
func (p *Pool) Close(ctx context.Context) error {
	close(p.jobs)

	done := make(chan error, 1)
	go func() { done <- p.g.Wait() }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
