// Package pricing loads the subscription plans shown on the pricing page and
// used by signup to decide whether a checkout is required.
package pricing

import (
	_ "embed"
	"fmt"
	"podium/pkg/domain"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed plans.yaml
var defaultPlans []byte

// FreeSpeakerPlanID is the plan assigned to speakers who sign up without one.
const FreeSpeakerPlanID = "speaker-free"

// Catalog is an immutable set of plans.
type Catalog struct {
	plans []domain.Plan
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultPlans)
}

// Parse decodes a yaml plans document.
func Parse(b []byte) (*Catalog, error) {
	var doc struct {
		Plans []domain.Plan `yaml:"plans"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("could not decode plans: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Plans))
	for _, p := range doc.Plans {
		if p.ID == "" {
			return nil, fmt.Errorf("plan %q has no id", p.Name)
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("duplicate plan id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		if !p.UserType.Valid() {
			return nil, fmt.Errorf("plan %q has invalid user type %q", p.ID, p.UserType)
		}
		if p.Paid() && p.PriceID == "" {
			return nil, fmt.Errorf("paid plan %q has no price id", p.ID)
		}
	}

	return &Catalog{plans: doc.Plans}, nil
}

// Plans returns the plans for userType in catalog order; an empty userType
// returns every plan.
func (c *Catalog) Plans(userType domain.UserType) []domain.Plan {
	out := make([]domain.Plan, 0, len(c.plans))
	for _, p := range c.plans {
		if userType == "" || p.UserType == userType {
			out = append(out, p)
		}
	}

	return out
}

// Plan looks up a plan by ID.
func (c *Catalog) Plan(id string) (domain.Plan, bool) {
	i := slices.IndexFunc(c.plans, func(p domain.Plan) bool { return p.ID == id })
	if i < 0 {
		return domain.Plan{}, false
	}

	return c.plans[i], true
}
