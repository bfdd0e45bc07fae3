package manifest

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/purser-dev/purser/internal/config"
	"github.com/purser-dev/purser/internal/ui"
)

// Validate resolves and verifies each named service for a region, in the
// given order, stopping at the first failure. A nil store validates the
// schema only, leaving secret placeholders unresolved.
func Validate(ctx context.Context, conf *config.Config, root string, services []string, region string, store SecretStore) error {
	for _, svc := range services {
		if err := validateOne(ctx, conf, root, svc, region, store); err != nil {
			return fmt.Errorf("validate %s: %w", svc, err)
		}
	}
	return nil
}

// ValidateParallel runs the same per-service validation concurrently,
// one goroutine per service with the store shared read-only. The first
// error observed is the one reported; per-service work is independent,
// so results match the sequential form.
func ValidateParallel(ctx context.Context, conf *config.Config, root string, services []string, region string, store SecretStore, limit int) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, svc := range services {
		g.Go(func() error {
			if err := validateOne(ctx, conf, root, svc, region, store); err != nil {
				return fmt.Errorf("validate %s: %w", svc, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func validateOne(ctx context.Context, conf *config.Config, root, svc, region string, store SecretStore) error {
	mf, err := Basic(conf, root, svc, region)
	if err != nil {
		return err
	}

	if contains(mf.Regions, region) {
		ui.Info("validating %s for %s", svc, region)
		if err := mf.Fill(ctx, conf, root, region, store); err != nil {
			return err
		}
		if err := mf.Verify(conf); err != nil {
			return err
		}
		ui.Success("validated %s for %s", svc, region)
		return nil
	}

	if mf.External {
		// Externally managed services verify the little that applies
		// to them even outside their own regions.
		return mf.Verify(conf)
	}

	return fmt.Errorf("%w: %s is not configured to be deployed in %s", ErrUnsupportedRegion, svc, region)
}

func contains(xs []string, x string) bool {
	for _, s := range xs {
		if s == x {
			return true
		}
	}
	return false
}
