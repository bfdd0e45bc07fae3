package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/purser-dev/purser/internal/config"
	"github.com/purser-dev/purser/internal/ui"
)

// Verifier is implemented by every nested manifest structure that can
// check its own sanity. It is called after defaults and implicits have
// been filled in.
type Verifier interface {
	Verify(conf *config.Config) error
}

// namePattern restricts service names to short, lower case, dashed words.
var namePattern = regexp.MustCompile(`^[0-9a-z-]{1,40}$`)

// Verify checks assumptions about a resolved manifest, short-circuiting
// on the first hard failure. It assumes Implicits has already run and
// bound a region; calling it on an unbound manifest is a programming
// error.
//
// Non-fatal findings (missing http port, missing health check,
// experimental service annotations) are surfaced as warnings only.
func (m *Manifest) Verify(conf *config.Config) error {
	if m.Region == "" {
		panic("manifest.Verify called before Implicits bound a region")
	}

	if !namePattern.MatchString(m.Name) {
		return fmt.Errorf("%w: %q: use a short, lower case name with dashes", ErrValidation, m.Name)
	}
	if strings.HasPrefix(m.Name, "-") || strings.HasSuffix(m.Name, "-") {
		return fmt.Errorf("%w: %q: use dashes to separate words only", ErrValidation, m.Name)
	}

	if err := m.DataHandling.Verify(conf); err != nil {
		return err
	}
	if err := m.Metadata.Verify(conf); err != nil {
		return err
	}

	if m.External {
		ui.Warning("ignoring most validation for externally managed service %s", m.Name)
		return nil
	}

	if m.Resources == nil {
		return fmt.Errorf("%w: %s: resources is mandatory", ErrValidation, m.Name)
	}
	if err := m.Resources.Verify(conf); err != nil {
		return err
	}

	// Sub-entities that carry their own verify capability.
	var checks []Verifier
	for i := range m.Dependencies {
		checks = append(checks, &m.Dependencies[i])
	}
	for i := range m.HostAliases {
		checks = append(checks, &m.HostAliases[i])
	}
	for i := range m.InitContainers {
		checks = append(checks, &m.InitContainers[i])
	}
	for i := range m.Sidecars {
		checks = append(checks, &m.Sidecars[i])
	}
	for i := range m.CronJobs {
		checks = append(checks, &m.CronJobs[i])
	}
	if m.Configs != nil {
		checks = append(checks, m.Configs)
	}
	if m.Prometheus != nil {
		checks = append(checks, m.Prometheus)
	}
	for _, c := range checks {
		if err := c.Verify(conf); err != nil {
			return err
		}
	}

	if *m.ReplicaCount < 1 {
		return fmt.Errorf("%w: %s: replicaCount must be at least 1", ErrValidation, m.Name)
	}

	if len(m.Regions) == 0 {
		return fmt.Errorf("%w: %s: no regions specified", ErrValidation, m.Name)
	}
	for _, r := range m.Regions {
		if !conf.HasRegion(r) {
			return fmt.Errorf("%w: %s: region %s has no entry in the global config", ErrValidation, m.Name, r)
		}
	}

	// Every service that exposes http must have a health check.
	if m.HTTPPort != nil && m.Health == nil {
		return fmt.Errorf("%w: %s has an httpPort but no health check", ErrValidation, m.Name)
	}
	if m.HTTPPort == nil {
		ui.Warning("%s exposes no http port", m.Name)
	}
	if m.Health == nil {
		ui.Warning("%s does not set a health check", m.Name)
	}

	if len(m.ServiceAnnotations) > 0 {
		ui.Warning("%s uses serviceAnnotations, an experimental feature", m.Name)
	}

	return nil
}
