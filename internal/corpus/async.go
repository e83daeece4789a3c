package corpus

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pending is a corpus load running on a background worker.
type Pending struct {
	group  *errgroup.Group
	corpus *Corpus
}

// LoadAsync starts loading path on a worker goroutine. Wait joins it once; the
// returned corpus is then read-only and safe to share without locking.
func LoadAsync(ctx context.Context, path string) *Pending {
	g, gctx := errgroup.WithContext(ctx)
	p := &Pending{group: g}
	g.Go(func() error {
		c, err := Load(gctx, path)
		if err != nil {
			return err
		}
		p.corpus = c
		return nil
	})
	return p
}

// Wait blocks until the load finishes.
func (p *Pending) Wait() (*Corpus, error) {
	if err := p.group.Wait(); err != nil {
		return nil, err
	}
	return p.corpus, nil
}
