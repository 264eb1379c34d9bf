package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ResyncAll rebuilds both collections concurrently. The embedding
// gateway serializes model access internally, so running the two
// resyncs in parallel only overlaps their database and index traffic.
func (s *Service) ResyncAll(ctx context.Context) (roots, fields int, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.ResyncRoots(ctx)
		roots = n
		return err
	})
	g.Go(func() error {
		n, err := s.ResyncFields(ctx)
		fields = n
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	return roots, fields, nil
}
