package generate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/phishguard/phishguard/internal/scenario"
)

// SimulationSet is one batch of freshly generated simulation scenarios.
type SimulationSet struct {
	URLs       []scenario.URL       `json:"urls"`
	LoginPages []scenario.LoginPage `json:"loginPages"`
}

// SimulationSet generates urlCount URL scenarios and loginCount
// login-page scenarios concurrently. The batch is all-or-nothing: if
// any single generation fails the whole set is discarded and the first
// error returned; partial results are never surfaced.
func (s *Service) SimulationSet(ctx context.Context, urlCount, loginCount int) (*SimulationSet, error) {
	if urlCount < 0 || loginCount < 0 {
		urlCount, loginCount = 0, 0
	}
	if urlCount == 0 && loginCount == 0 {
		urlCount, loginCount = 3, 3
	}

	set := &SimulationSet{
		URLs:       make([]scenario.URL, urlCount),
		LoginPages: make([]scenario.LoginPage, loginCount),
	}

	g, gctx := errgroup.WithContext(ctx)

	for i := range urlCount {
		g.Go(func() error {
			u, err := s.URLScenario(gctx)
			if err != nil {
				return err
			}
			set.URLs[i] = *u
			return nil
		})
	}
	for i := range loginCount {
		g.Go(func() error {
			p, err := s.LoginScenario(gctx)
			if err != nil {
				return err
			}
			set.LoginPages[i] = *p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}
